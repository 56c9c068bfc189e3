package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"restfulmind/internal/config"
	"restfulmind/internal/logger"
	"restfulmind/internal/middleware"
	"restfulmind/internal/models"
	"restfulmind/internal/services"
	"restfulmind/internal/utils/helpers"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        models.PublicUser `json:"user"`
}

func (h *AuthHandler) tokenTTL() time.Duration {
	ttl, err := time.ParseDuration(h.cfg.AccessTokenTTL)
	if err != nil || ttl <= 0 {
		return 24 * time.Hour
	}
	return ttl
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Данные регистрации"
// @Success 201 {object} tokenResponse
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 409 {string} string "Email уже зарегистрирован"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		helpers.Error(w, http.StatusBadRequest, "Email и пароль обязательны")
		return
	}

	token, user, err := h.authService.Register(r.Context(), req.Email, req.Name, req.Password, h.cfg.JWTSecret, h.tokenTTL())
	if err != nil {
		log.Warn("Ошибка регистрации пользователя", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusCreated, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	})
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} tokenResponse
// @Failure 401 {string} string "Неверный email или пароль"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password, h.cfg.JWTSecret, h.tokenTTL())
	if err != nil {
		log.Warn("Ошибка входа пользователя", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	})
}

// Me godoc
// @Summary Текущий пользователь
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.PublicUser
// @Failure 401 {string} string "Не авторизован"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	userID, ok := r.Context().Value(middleware.ContextUserID).(string)
	if !ok || userID == "" {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		log.Warn("Пользователь из контекста не найден", zap.String("user_id", userID), zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "Пользователь не найден")
		return
	}

	helpers.JSON(w, http.StatusOK, user.Public())
}
