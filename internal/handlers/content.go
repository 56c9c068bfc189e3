package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"restfulmind/internal/logger"
	"restfulmind/internal/models"
	"restfulmind/internal/services"
	"restfulmind/internal/utils/helpers"
)

type StaticContentHandler struct{ svc *services.StaticContentService }

func NewStaticContentHandler(s *services.StaticContentService) *StaticContentHandler {
	return &StaticContentHandler{svc: s}
}

// GetPage godoc
// @Summary Статическая страница
// @Description Отдаёт переопределение из БД или встроенный текст (privacy/terms/disclaimer)
// @Tags content
// @Produce json
// @Param type path string true "Тип страницы"
// @Success 200 {object} models.StaticContent
// @Failure 500 {object} map[string]string
// @Router /api/content/{type} [get]
func (h *StaticContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	pageType := mux.Vars(r)["type"]

	c, err := h.svc.GetPage(r.Context(), pageType)
	if err != nil {
		log.Error("Ошибка получения статической страницы", zap.String("type", pageType), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, c)
}

// UpsertPage godoc
// @Summary Сохранить переопределение статической страницы
// @Description Доступно только администратору
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Тип страницы"
// @Param body body models.StaticContentRequest true "Заголовок и текст"
// @Success 200 {object} models.StaticContent
// @Failure 400 {object} map[string]string
// @Router /api/content/{type} [put]
func (h *StaticContentHandler) UpsertPage(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	pageType := mux.Vars(r)["type"]

	var req models.StaticContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при сохранении страницы", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if req.Title == "" {
		helpers.Error(w, http.StatusBadRequest, "Заголовок обязателен")
		return
	}

	c, err := h.svc.UpsertPage(r.Context(), pageType, &req)
	if err != nil {
		log.Error("Ошибка сохранения статической страницы", zap.String("type", pageType), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, c)
}
