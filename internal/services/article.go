package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/logger"
	"restfulmind/internal/models"
	"restfulmind/internal/repository"
)

const (
	defaultArticleLimit = 50
	weeklyWindow        = 7 * 24 * time.Hour
	weeklyLimit         = 50
	allArticlesLimit    = 1000
	defaultReadingTime  = 5
)

type ArticleService struct {
	repo    repository.ArticleRepo
	catRepo repository.CategoryRepo
	policy  *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepo, catRepo repository.CategoryRepo) *ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &ArticleService{repo: repo, catRepo: catRepo, policy: p}
}

// ListPublished отдаёт только опубликованные статьи. Неизвестный slug
// категории молча игнорируется — список просто не фильтруется по категории,
// как в исходном поведении.
func (s *ArticleService) ListPublished(ctx context.Context, f models.ArticleFilter) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)

	if f.Limit <= 0 {
		f.Limit = defaultArticleLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}

	var categoryID *string
	if f.CategorySlug != "" {
		cat, err := s.catRepo.GetBySlug(ctx, f.CategorySlug)
		switch {
		case err == nil:
			categoryID = &cat.ID
		case errors.Is(err, apperrors.ErrNotFound):
			log.Debug("Неизвестный slug категории в фильтре", zap.String("slug", f.CategorySlug))
		default:
			log.Error("Ошибка резолва категории по slug (repo)", zap.Error(err))
			return nil, err
		}
	}

	list, err := s.repo.GetPublished(ctx, categoryID, f.Featured, f.Limit, f.Skip)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список статей получен", zap.Int("count", len(list)))
	return list, nil
}

// ListWeeklyUpdates — опубликованные статьи, обновлённые за последние 7 суток,
// граница включительно.
func (s *ArticleService) ListWeeklyUpdates(ctx context.Context) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)

	since := time.Now().UTC().Add(-weeklyWindow)
	list, err := s.repo.GetUpdatedSince(ctx, since, weeklyLimit)
	if err != nil {
		log.Error("Ошибка получения еженедельных обновлений (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Еженедельные обновления получены", zap.Int("count", len(list)))
	return list, nil
}

// ListAll — полный список без фильтра публикации, только для админки.
func (s *ArticleService) ListAll(ctx context.Context) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.GetAll(ctx, allArticlesLimit)
	if err != nil {
		log.Error("Ошибка получения всех статей (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Все статьи получены", zap.Int("count", len(list)))
	return list, nil
}

// GetBySlug — публичная выдача одной статьи. Побочный эффект: счётчик
// просмотров атомарно увеличивается на 1 при каждом вызове, без дедупликации.
// Категория-владелец встраивается в ответ; null при висячей ссылке.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		log.Warn("Статья не найдена (repo)", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, slug); err != nil {
		log.Error("Ошибка инкремента просмотров (repo)", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	if a.CategoryID != nil {
		cat, err := s.catRepo.GetByID(ctx, *a.CategoryID)
		switch {
		case err == nil:
			a.Category = cat
		case errors.Is(err, apperrors.ErrNotFound):
			// висячая ссылка — категория в ответе останется null
		default:
			log.Error("Ошибка получения категории статьи (repo)", zap.Error(err))
			return nil, err
		}
	}

	log.Debug("Статья получена", zap.String("slug", slug), zap.Int64("views", a.Views))
	return a, nil
}

func (s *ArticleService) Create(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи", zap.String("title", strings.TrimSpace(req.Title)), zap.String("slug", req.Slug))

	now := time.Now().UTC()
	categoryID := strings.TrimSpace(req.CategoryID)

	a := &models.Article{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(req.Title),
		Slug:            strings.TrimSpace(req.Slug),
		Excerpt:         req.Excerpt,
		Content:         s.policy.Sanitize(req.Content),
		FeaturedImage:   req.FeaturedImage,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		IsFeatured:      req.IsFeatured,
		IsPublished:     true,
		ReadingTime:     defaultReadingTime,
		WhatsNew:        req.WhatsNew,
		Views:           0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if categoryID != "" {
		a.CategoryID = &categoryID
	}
	if req.IsPublished != nil {
		a.IsPublished = *req.IsPublished
	}
	if req.ReadingTime != nil {
		a.ReadingTime = *req.ReadingTime
	}

	if err := s.repo.Create(ctx, a); err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана", zap.String("id", a.ID), zap.Bool("published", a.IsPublished))
	return a, nil
}

// Update — частичное обновление: применяются только поля, присутствующие
// в patch; updated_at обновляется всегда, даже при пустом patch.
func (s *ArticleService) Update(ctx context.Context, id string, patch *models.UpdateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи", zap.String("id", id))

	if patch.Content != nil {
		safe := s.policy.Sanitize(*patch.Content)
		patch.Content = &safe
	}

	if err := s.repo.Update(ctx, id, patch, time.Now().UTC()); err != nil {
		log.Warn("Ошибка обновления статьи (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("Ошибка получения статьи после обновления (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Статья обновлена", zap.String("id", id))
	return a, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("Ошибка удаления статьи (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Статья удалена", zap.String("id", id))
	return nil
}
