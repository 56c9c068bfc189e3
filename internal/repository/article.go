package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/models"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) error
	GetPublished(ctx context.Context, categoryID *string, featured *bool, limit, skip int) ([]*models.Article, error)
	GetUpdatedSince(ctx context.Context, since time.Time, limit int) ([]*models.Article, error)
	GetAll(ctx context.Context, limit int) ([]*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	IncrementViews(ctx context.Context, slug string) error
	Update(ctx context.Context, id string, patch *models.UpdateArticleRequest, now time.Time) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, onlyPublished bool) (int, error)
	SumViews(ctx context.Context) (int64, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, title, slug, excerpt, content, category_id, featured_image,
	meta_title, meta_description, is_featured, is_published, reading_time,
	whats_new, views, created_at, updated_at`

func (r *articleRepo) Create(ctx context.Context, a *models.Article) error {
	const q = `
		INSERT INTO articles (id, title, slug, excerpt, content, category_id, featured_image,
			meta_title, meta_description, is_featured, is_published, reading_time,
			whats_new, views, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`
	_, err := r.db.Exec(ctx, q,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.CategoryID, a.FeaturedImage,
		a.MetaTitle, a.MetaDescription, a.IsFeatured, a.IsPublished, a.ReadingTime,
		a.WhatsNew, a.Views, a.CreatedAt, a.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrSlugTaken
	}
	if isFKViolation(err) {
		return apperrors.ErrCategoryMissing
	}
	return err
}

func (r *articleRepo) GetPublished(ctx context.Context, categoryID *string, featured *bool, limit, skip int) ([]*models.Article, error) {
	where := []string{"is_published = TRUE"}
	args := []interface{}{}
	i := 1

	if categoryID != nil {
		where = append(where, fmt.Sprintf("category_id = $%d", i))
		args = append(args, *categoryID)
		i++
	}
	if featured != nil {
		where = append(where, fmt.Sprintf("is_featured = $%d", i))
		args = append(args, *featured)
		i++
	}

	sql := `SELECT ` + articleColumns + ` FROM articles WHERE ` + strings.Join(where, " AND ") +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, skip)

	return r.list(ctx, sql, args...)
}

func (r *articleRepo) GetUpdatedSince(ctx context.Context, since time.Time, limit int) ([]*models.Article, error) {
	// Граница включительно: updated_at >= since.
	const q = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE is_published = TRUE AND updated_at >= $1
		ORDER BY updated_at DESC
		LIMIT $2
	`
	return r.list(ctx, q, since, limit)
}

func (r *articleRepo) GetAll(ctx context.Context, limit int) ([]*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at DESC LIMIT $1`
	return r.list(ctx, q, limit)
}

func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	return r.one(ctx, q, slug)
}

func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.one(ctx, q, id)
}

// IncrementViews — одиночный атомарный инкремент на стороне БД,
// без read-modify-write в приложении.
func (r *articleRepo) IncrementViews(ctx context.Context, slug string) error {
	_, err := r.db.Exec(ctx, `UPDATE articles SET views = views + 1 WHERE slug = $1`, slug)
	return err
}

func (r *articleRepo) Update(ctx context.Context, id string, patch *models.UpdateArticleRequest, now time.Time) error {
	set := []string{}
	args := []interface{}{}
	i := 1

	add := func(col string, val interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Excerpt != nil {
		add("excerpt", *patch.Excerpt)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.CategoryID != nil {
		add("category_id", *patch.CategoryID)
	}
	if patch.FeaturedImage != nil {
		add("featured_image", *patch.FeaturedImage)
	}
	if patch.MetaTitle != nil {
		add("meta_title", *patch.MetaTitle)
	}
	if patch.MetaDescription != nil {
		add("meta_description", *patch.MetaDescription)
	}
	if patch.IsFeatured != nil {
		add("is_featured", *patch.IsFeatured)
	}
	if patch.IsPublished != nil {
		add("is_published", *patch.IsPublished)
	}
	if patch.ReadingTime != nil {
		add("reading_time", *patch.ReadingTime)
	}
	if patch.WhatsNew != nil {
		add("whats_new", *patch.WhatsNew)
	}

	// updated_at обновляется всегда, даже при пустом patch.
	add("updated_at", now)

	sql := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d", strings.Join(set, ", "), i)
	args = append(args, id)

	tag, err := r.db.Exec(ctx, sql, args...)
	if isUniqueViolation(err) {
		return apperrors.ErrSlugTaken
	}
	if isFKViolation(err) {
		return apperrors.ErrCategoryMissing
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *articleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *articleRepo) Count(ctx context.Context, onlyPublished bool) (int, error) {
	q := `SELECT COUNT(*) FROM articles`
	if onlyPublished {
		q += ` WHERE is_published = TRUE`
	}
	var n int
	if err := r.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *articleRepo) SumViews(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(views), 0) FROM articles`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *articleRepo) list(ctx context.Context, sql string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *articleRepo) one(ctx context.Context, q string, arg any) (*models.Article, error) {
	a, err := scanArticle(r.db.QueryRow(ctx, q, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.CategoryID, &a.FeaturedImage,
		&a.MetaTitle, &a.MetaDescription, &a.IsFeatured, &a.IsPublished, &a.ReadingTime,
		&a.WhatsNew, &a.Views, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
