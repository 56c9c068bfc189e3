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

type CategoryHandler struct{ svc *services.CategoryService }

func NewCategoryHandler(s *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: s}
}

// List godoc
// @Summary Список всех категорий
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string
// @Router /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.List(r.Context())
	if err != nil {
		log.Error("Ошибка получения категорий", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// GetBySlug godoc
// @Summary Категория по slug
// @Tags categories
// @Produce json
// @Param slug path string true "Slug категории"
// @Success 200 {object} models.Category
// @Failure 404 {object} map[string]string
// @Router /api/categories/{slug} [get]
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	slug := mux.Vars(r)["slug"]

	c, err := h.svc.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Warn("Категория не найдена", zap.String("slug", slug), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, c)
}

// Create godoc
// @Summary Создать категорию
// @Description Доступно только администратору
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body models.CategoryRequest true "Данные категории"
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании категории", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if req.Name == "" || req.Slug == "" {
		helpers.Error(w, http.StatusBadRequest, "Имя и slug обязательны")
		return
	}

	c, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		log.Error("Ошибка создания категории", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusCreated, c)
}

// Update godoc
// @Summary Обновить категорию
// @Description Доступно только администратору
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "ID категории"
// @Param body body models.CategoryRequest true "Обновлённые данные"
// @Success 200 {object} models.Category
// @Failure 404 {object} map[string]string
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении категории", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	c, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		log.Warn("Ошибка обновления категории", zap.String("id", id), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, c)
}

// Delete godoc
// @Summary Удалить категорию
// @Description Доступно только администратору
// @Tags categories
// @Security ApiKeyAuth
// @Param id path string true "ID категории"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		log.Warn("Ошибка удаления категории", zap.String("id", id), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Категория удалена"})
}
