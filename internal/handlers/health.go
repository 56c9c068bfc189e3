package handlers

import (
	"net/http"

	"restfulmind/internal/utils/helpers"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Root godoc
// @Summary Корень API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/ [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]string{
		"message": "RestfulMind API",
		"status":  "healthy",
	})
}

// Health godoc
// @Summary Liveness-проба
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
