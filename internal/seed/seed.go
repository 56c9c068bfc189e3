package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"restfulmind/internal/models"
	"restfulmind/internal/repository"
	"restfulmind/internal/utils"
)

const (
	adminEmail    = "admin@restfulmind.com"
	adminPassword = "admin123"
)

// Run очищает таблицы контента и наполняет базу стартовыми данными:
// категории, опубликованные статьи и администратор.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `DELETE FROM articles`); err != nil {
		return fmt.Errorf("очистка статей: %w", err)
	}
	if _, err := pool.Exec(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("очистка категорий: %w", err)
	}
	if _, err := pool.Exec(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("очистка пользователей: %w", err)
	}

	catRepo := repository.NewCategoryRepo(pool)
	artRepo := repository.NewArticleRepo(pool)
	userRepo := repository.NewUserRepo(pool)

	now := time.Now().UTC()
	catBySlug := make(map[string]string, len(categories))

	for i := range categories {
		c := categories[i]
		c.ID = uuid.NewString()
		c.CreatedAt = now
		if err := catRepo.Create(ctx, &c); err != nil {
			return fmt.Errorf("категория %q: %w", c.Slug, err)
		}
		catBySlug[c.Slug] = c.ID
	}

	for i, src := range articles {
		catID := catBySlug[src.CategorySlug]
		// Разносим даты, чтобы списки выглядели живыми.
		daysAgo := i * 2
		createdAt := now.AddDate(0, 0, -daysAgo)
		updatedDays := daysAgo - 7
		if updatedDays < 0 {
			updatedDays = 0
		}
		updatedAt := now.AddDate(0, 0, -updatedDays)

		a := &models.Article{
			ID:              uuid.NewString(),
			Title:           src.Title,
			Slug:            src.Slug,
			Excerpt:         src.Excerpt,
			Content:         src.Content,
			CategoryID:      &catID,
			FeaturedImage:   strPtr(src.FeaturedImage),
			MetaTitle:       strPtr(src.Title + " | RestfulMind"),
			MetaDescription: strPtr(src.Excerpt),
			IsFeatured:      src.IsFeatured,
			IsPublished:     true,
			ReadingTime:     src.ReadingTime,
			Views:           0,
			CreatedAt:       createdAt,
			UpdatedAt:       updatedAt,
		}
		if i < 5 {
			a.WhatsNew = strPtr("Updated with the latest research and practical recommendations.")
		}
		if err := artRepo.Create(ctx, a); err != nil {
			return fmt.Errorf("статья %q: %w", a.Slug, err)
		}
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("хеширование пароля: %w", err)
	}
	admin := &models.User{
		ID:           uuid.NewString(),
		Email:        adminEmail,
		Name:         "Admin User",
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("админ: %w", err)
	}

	return nil
}
