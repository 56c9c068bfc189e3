package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"restfulmind/internal/apperrors"
)

func TestStatusFromErr(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrEmailTaken, http.StatusConflict},
		{apperrors.ErrSlugTaken, http.StatusConflict},
		{apperrors.ErrAlreadySubscribed, http.StatusConflict},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrCategoryMissing, http.StatusBadRequest},
		{errors.New("боль"), http.StatusInternalServerError},
		{fmt.Errorf("обёртка: %w", apperrors.ErrNotFound), http.StatusNotFound},
	}

	for _, c := range cases {
		if got := statusFromErr(c.err); got != c.want {
			t.Fatalf("%v: ожидался статус %d, получено %d", c.err, c.want, got)
		}
	}
}

func TestParseID_MalformedIs404(t *testing.T) {
	r := httptest.NewRequest(http.MethodDelete, "/api/articles/not-a-uuid", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "not-a-uuid"})
	w := httptest.NewRecorder()

	if _, ok := parseID(w, r); ok {
		t.Fatal("мусорный id не должен проходить валидацию")
	}
	if w.Code != http.StatusNotFound {
		t.Fatalf("ожидался 404 для мусорного id, получено %d", w.Code)
	}
}

func TestParseID_Valid(t *testing.T) {
	const id = "6f1e1d2c-9a7b-4c3d-8e5f-0a1b2c3d4e5f"
	r := httptest.NewRequest(http.MethodDelete, "/api/articles/"+id, nil)
	r = mux.SetURLVars(r, map[string]string{"id": id})
	w := httptest.NewRecorder()

	got, ok := parseID(w, r)
	if !ok || got != id {
		t.Fatalf("валидный UUID отвергнут: %q, ok=%v", got, ok)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("валидный id не должен писать ответ, статус %d", w.Code)
	}
}
