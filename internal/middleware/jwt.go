package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"restfulmind/internal/config"
	"restfulmind/internal/logger"
	"restfulmind/internal/reqctx"
	"restfulmind/internal/repository"
	"restfulmind/internal/utils"
)

type ContextKey string

const (
	ContextUserID    ContextKey = "user_id"
	ContextEmail     ContextKey = "email"
	ContextRole      ContextKey = "role"
	ContextRequestID ContextKey = "request_id"
)

// JWTAuth проверяет bearer-токен и резолвит пользователя по sub:
// токен может быть формально валиден, а пользователь уже удалён — тогда 401.
func JWTAuth(cfg *config.Config, users repository.UserRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				http.Error(w, "Отсутствует access token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := utils.ParseToken(cfg.JWTSecret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен", zap.Error(err))
				if errors.Is(err, utils.ErrTokenExpired) {
					http.Error(w, "Токен просрочен", http.StatusUnauthorized)
				} else {
					http.Error(w, "Неверный токен", http.StatusUnauthorized)
				}
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: пользователь из токена не найден",
					zap.String("user_id", claims.UserID), zap.Error(err))
				http.Error(w, "Пользователь не найден", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, user.ID)
			ctx = context.WithValue(ctx, ContextEmail, user.Email)
			ctx = context.WithValue(ctx, ContextRole, user.Role)
			ctx = reqctx.WithUserID(ctx, user.ID)
			ctx = reqctx.WithEmail(ctx, user.Email)
			ctx = reqctx.WithRole(ctx, user.Role)

			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден",
				zap.String("user_id", user.ID), zap.String("role", user.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
