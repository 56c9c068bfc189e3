package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"restfulmind/internal/logger"
	"restfulmind/internal/models"
	"restfulmind/internal/repository"
)

type CategoryService struct {
	repo repository.CategoryRepo
}

func NewCategoryService(repo repository.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	log := logger.WithCtx(ctx)
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("Ошибка получения списка категорий (repo)", zap.Error(err))
		return nil, err
	}
	log.Debug("Список категорий получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	c, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		log.Warn("Категория не найдена (repo)", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание категории", zap.String("name", req.Name), zap.String("slug", req.Slug))

	c := &models.Category{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Slug:            strings.TrimSpace(req.Slug),
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("Ошибка создания категории (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Категория создана", zap.String("id", c.ID), zap.String("slug", c.Slug))
	return c, nil
}

// Update — полная замена изменяемых полей, created_at не трогается.
func (s *CategoryService) Update(ctx context.Context, id string, req *models.CategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление категории", zap.String("id", id), zap.String("slug", req.Slug))

	c := &models.Category{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Slug:            strings.TrimSpace(req.Slug),
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}

	if err := s.repo.Update(ctx, c); err != nil {
		log.Warn("Ошибка обновления категории (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("Ошибка получения категории после обновления (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Категория обновлена", zap.String("id", id))
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление категории", zap.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("Ошибка удаления категории (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Категория удалена", zap.String("id", id))
	return nil
}
