package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/logger"
	"restfulmind/internal/models"
	"restfulmind/internal/repository"
)

const subscribersLimit = 1000

type SubscriberService struct {
	repo repository.SubscriberRepo
}

func NewSubscriberService(repo repository.SubscriberRepo) *SubscriberService {
	return &SubscriberService{repo: repo}
}

// Subscribe — публичная подписка. Конфликт, если запись с таким email уже
// есть, активная или нет: отписанный email повторно не подписывается.
func (s *SubscriberService) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error) {
	log := logger.WithCtx(ctx)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	log.Info("Подписка на рассылку", zap.String("email", email), zap.Int("interests_count", len(req.Interests)))

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		log.Error("Ошибка проверки email подписчика (repo)", zap.Error(err))
		return nil, err
	}
	if exists {
		log.Warn("Email уже подписан", zap.String("email", email))
		return nil, apperrors.ErrAlreadySubscribed
	}

	sub := &models.Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Interests:    req.Interests,
		GDPRConsent:  true,
		IsActive:     true,
		SubscribedAt: time.Now().UTC(),
	}
	if sub.Interests == nil {
		sub.Interests = []string{}
	}
	if req.GDPRConsent != nil {
		sub.GDPRConsent = *req.GDPRConsent
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		log.Error("Ошибка создания подписчика (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Подписчик создан", zap.String("id", sub.ID))
	return sub, nil
}

// List — только активные; опциональный точный фильтр по одному интересу.
func (s *SubscriberService) List(ctx context.Context, interest string) ([]*models.Subscriber, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.GetActive(ctx, interest, subscribersLimit)
	if err != nil {
		log.Error("Ошибка получения подписчиков (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Подписчики получены", zap.Int("count", len(list)), zap.String("interest", interest))
	return list, nil
}

// Stats: total — число активных; by_interest — каждый интерес подписчика
// даёт отдельную строку, подписчик с тремя интересами попадает в три корзины.
func (s *SubscriberService) Stats(ctx context.Context) (*models.SubscriberStats, error) {
	log := logger.WithCtx(ctx)

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		log.Error("Ошибка подсчёта подписчиков (repo)", zap.Error(err))
		return nil, err
	}

	byInterest, err := s.repo.CountByInterest(ctx)
	if err != nil {
		log.Error("Ошибка подсчёта по интересам (repo)", zap.Error(err))
		return nil, err
	}

	return &models.SubscriberStats{Total: total, ByInterest: byInterest}, nil
}

// Unsubscribe — мягкое удаление: документ остаётся, is_active снимается.
func (s *SubscriberService) Unsubscribe(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Отписка подписчика", zap.String("id", id))

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.Warn("Ошибка отписки (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Подписчик отписан", zap.String("id", id))
	return nil
}
