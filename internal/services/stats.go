package services

import (
	"context"

	"go.uber.org/zap"

	"restfulmind/internal/logger"
	"restfulmind/internal/models"
	"restfulmind/internal/repository"
)

type StatsService struct {
	articles    repository.ArticleRepo
	subscribers repository.SubscriberRepo
}

func NewStatsService(articles repository.ArticleRepo, subscribers repository.SubscriberRepo) *StatsService {
	return &StatsService{articles: articles, subscribers: subscribers}
}

// Dashboard — сводка для админки; total_views — сумма счётчиков по всем
// статьям, 0 при пустой базе.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	log := logger.WithCtx(ctx)

	total, err := s.articles.Count(ctx, false)
	if err != nil {
		log.Error("Ошибка подсчёта статей (repo)", zap.Error(err))
		return nil, err
	}

	published, err := s.articles.Count(ctx, true)
	if err != nil {
		log.Error("Ошибка подсчёта опубликованных статей (repo)", zap.Error(err))
		return nil, err
	}

	subs, err := s.subscribers.CountActive(ctx)
	if err != nil {
		log.Error("Ошибка подсчёта подписчиков (repo)", zap.Error(err))
		return nil, err
	}

	views, err := s.articles.SumViews(ctx)
	if err != nil {
		log.Error("Ошибка суммирования просмотров (repo)", zap.Error(err))
		return nil, err
	}

	return &models.DashboardStats{
		TotalArticles:     total,
		PublishedArticles: published,
		TotalSubscribers:  subs,
		TotalViews:        views,
	}, nil
}
