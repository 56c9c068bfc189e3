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
	"restfulmind/internal/utils"
)

type AuthService struct {
	repo repository.UserRepo
}

func NewAuthService(repo repository.UserRepo) *AuthService {
	return &AuthService{repo: repo}
}

// Register создаёт пользователя и сразу выдаёт access-токен.
// Роль фиксированная: каждый зарегистрированный — admin (единственная роль системы).
func (s *AuthService) Register(ctx context.Context, email, name, password, jwtSecret string, ttl time.Duration) (string, *models.User, error) {
	log := logger.WithCtx(ctx)
	email = strings.TrimSpace(strings.ToLower(email))
	log.Info("Регистрация пользователя (service)", zap.String("email", email))

	taken, err := s.repo.IsEmailTaken(ctx, email)
	if err != nil {
		log.Error("Ошибка проверки email", zap.Error(err))
		return "", nil, err
	}
	if taken {
		log.Warn("Email уже зарегистрирован", zap.String("email", email))
		return "", nil, apperrors.ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return "", nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		log.Error("Ошибка создания пользователя", zap.Error(err))
		return "", nil, err
	}

	token, err := utils.GenerateToken(jwtSecret, user.ID, user.Email, user.Role, ttl)
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", nil, err
	}

	log.Info("Пользователь зарегистрирован (service)", zap.String("user_id", user.ID))
	return token, user, nil
}

// Login не различает «нет такого пользователя» и «неверный пароль» —
// наружу в обоих случаях уходит ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password, jwtSecret string, ttl time.Duration) (string, *models.User, error) {
	log := logger.WithCtx(ctx)
	email = strings.TrimSpace(strings.ToLower(email))
	log.Info("Попытка входа (service)", zap.String("email", email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.Warn("Пользователь не найден (service)", zap.String("email", email), zap.Error(err))
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("email", email))
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(jwtSecret, user.ID, user.Email, user.Role, ttl)
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", nil, err
	}

	log.Info("Вход выполнен (service)", zap.String("user_id", user.ID))
	return token, user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Пользователь не найден по ID (service)", zap.String("user_id", id), zap.Error(err))
	}
	return user, err
}
