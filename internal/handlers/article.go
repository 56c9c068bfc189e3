package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"restfulmind/internal/logger"
	"restfulmind/internal/models"
	"restfulmind/internal/services"
	"restfulmind/internal/utils/helpers"
)

type ArticleHandler struct{ svc *services.ArticleService }

func NewArticleHandler(s *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: s}
}

// ListPublished godoc
// @Summary Опубликованные статьи
// @Description Фильтры: ?category= (slug), ?featured=, ?limit=, ?skip=
// @Tags articles
// @Produce json
// @Param category query string false "Slug категории"
// @Param featured query bool false "Только избранные"
// @Param limit query int false "Лимит (по умолчанию 50)"
// @Param skip query int false "Смещение"
// @Success 200 {array} models.Article
// @Failure 500 {object} map[string]string
// @Router /api/articles [get]
func (h *ArticleHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	q := r.URL.Query()

	filter := models.ArticleFilter{
		CategorySlug: q.Get("category"),
	}
	if raw := q.Get("featured"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &v
		} else {
			log.Warn("Неверное значение featured", zap.String("raw", raw))
		}
	}
	if raw := q.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Limit = v
		}
	}
	if raw := q.Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Skip = v
		}
	}

	list, err := h.svc.ListPublished(r.Context(), filter)
	if err != nil {
		log.Error("Ошибка получения статей", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// WeeklyUpdates godoc
// @Summary Статьи, обновлённые за последние 7 дней
// @Tags articles
// @Produce json
// @Success 200 {array} models.Article
// @Failure 500 {object} map[string]string
// @Router /api/articles/weekly-updates [get]
func (h *ArticleHandler) WeeklyUpdates(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.ListWeeklyUpdates(r.Context())
	if err != nil {
		log.Error("Ошибка получения еженедельных обновлений", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// ListAll godoc
// @Summary Все статьи без фильтра публикации
// @Description Доступно только администратору
// @Tags articles
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Article
// @Failure 401 {object} map[string]string
// @Router /api/articles/all [get]
func (h *ArticleHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.ListAll(r.Context())
	if err != nil {
		log.Error("Ошибка получения всех статей", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// GetBySlug godoc
// @Summary Статья по slug
// @Description Каждый вызов увеличивает счётчик просмотров на 1 и встраивает категорию
// @Tags articles
// @Produce json
// @Param slug path string true "Slug статьи"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string
// @Router /api/articles/{slug} [get]
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	slug := mux.Vars(r)["slug"]

	a, err := h.svc.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Warn("Статья не найдена", zap.String("slug", slug), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, a)
}

// Create godoc
// @Summary Создать статью
// @Description Доступно только администратору
// @Tags articles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body models.CreateArticleRequest true "Данные статьи"
// @Success 201 {object} models.Article
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if req.Title == "" || req.Slug == "" {
		helpers.Error(w, http.StatusBadRequest, "Заголовок и slug обязательны")
		return
	}

	a, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		log.Error("Ошибка создания статьи", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusCreated, a)
}

// Update godoc
// @Summary Частично обновить статью
// @Description Применяются только переданные поля; updated_at обновляется всегда
// @Tags articles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "ID статьи"
// @Param body body models.UpdateArticleRequest true "Изменяемые поля"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string
// @Router /api/articles/{id} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var patch models.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Warn("Невалидный JSON при обновлении статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	a, err := h.svc.Update(r.Context(), id, &patch)
	if err != nil {
		log.Warn("Ошибка обновления статьи", zap.String("id", id), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, a)
}

// Delete godoc
// @Summary Удалить статью
// @Description Доступно только администратору
// @Tags articles
// @Security ApiKeyAuth
// @Param id path string true "ID статьи"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		log.Warn("Ошибка удаления статьи", zap.String("id", id), zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Статья удалена"})
}
