package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/utils/helpers"
)

// parseID достаёт {id} из пути и валидирует его как UUID. Мусор вместо
// UUID — это отсутствующий ресурс: сразу 404, не доводя до ошибки
// кодирования параметра в БД.
func parseID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		helpers.Error(w, http.StatusNotFound, apperrors.ErrNotFound.Error())
		return "", false
	}
	return id, true
}

// statusFromErr сопоставляет доменные ошибки с HTTP-статусами;
// всё неопознанное уходит как 500.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrEmailTaken),
		errors.Is(err, apperrors.ErrSlugTaken),
		errors.Is(err, apperrors.ErrAlreadySubscribed):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrCategoryMissing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
