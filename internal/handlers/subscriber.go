package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"restfulmind/internal/logger"
	"restfulmind/internal/models"
	"restfulmind/internal/services"
	"restfulmind/internal/utils/helpers"
)

type SubscriberHandler struct{ svc *services.SubscriberService }

func NewSubscriberHandler(s *services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{svc: s}
}

// Subscribe godoc
// @Summary Подписка на рассылку
// @Tags subscribers
// @Accept json
// @Produce json
// @Param body body models.SubscribeRequest true "Данные подписки"
// @Success 201 {object} models.Subscriber
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/subscribers [post]
func (h *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при подписке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if email := strings.TrimSpace(req.Email); email == "" || !strings.Contains(email, "@") {
		helpers.Error(w, http.StatusBadRequest, "Некорректный email")
		return
	}

	sub, err := h.svc.Subscribe(r.Context(), &req)
	if err != nil {
		log.Warn("Ошибка подписки", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusCreated, sub)
}

// List godoc
// @Summary Активные подписчики
// @Description Доступно только администратору; ?interest= фильтрует по интересу
// @Tags subscribers
// @Produce json
// @Security ApiKeyAuth
// @Param interest query string false "Тег интереса (slug категории)"
// @Success 200 {array} models.Subscriber
// @Failure 401 {object} map[string]string
// @Router /api/subscribers [get]
func (h *SubscriberHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	interest := r.URL.Query().Get("interest")

	list, err := h.svc.List(r.Context(), interest)
	if err != nil {
		log.Error("Ошибка получения подписчиков", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// Stats godoc
// @Summary Статистика подписчиков
// @Description Доступно только администратору
// @Tags subscribers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.SubscriberStats
// @Failure 401 {object} map[string]string
// @Router /api/subscribers/stats [get]
func (h *SubscriberHandler) Stats(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		log.Error("Ошибка получения статистики подписчиков", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, stats)
}

// Unsubscribe godoc
// @Summary Отписать подписчика
// @Description Мягкое удаление: документ остаётся с is_active=false
// @Tags subscribers
// @Security ApiKeyAuth
// @Param id path string true "ID подписчика"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/subscribers/{id} [delete]
func (h *SubscriberHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Unsubscribe(r.Context(), id); err != nil {
		log.Warn("Ошибка отписки", zap.String("id", id), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Подписка отменена"})
}
