package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"restfulmind/internal/logger"
	"restfulmind/internal/services"
	"restfulmind/internal/utils/helpers"
)

type StatsHandler struct{ svc *services.StatsService }

func NewStatsHandler(s *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: s}
}

// Dashboard godoc
// @Summary Сводка для админ-панели
// @Description Доступно только администратору
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DashboardStats
// @Failure 401 {object} map[string]string
// @Router /api/stats/dashboard [get]
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	stats, err := h.svc.Dashboard(r.Context())
	if err != nil {
		log.Error("Ошибка получения сводки", zap.Error(err))
		helpers.Error(w, statusFromErr(err), err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, stats)
}
