package services

import (
	"context"
	"strings"
	"testing"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/models"
)

type mockContentRepo struct {
	byType map[string]*models.StaticContent
}

func newMockContentRepo() *mockContentRepo {
	return &mockContentRepo{byType: make(map[string]*models.StaticContent)}
}

func (m *mockContentRepo) GetByType(_ context.Context, pageType string) (*models.StaticContent, error) {
	c, ok := m.byType[pageType]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

func (m *mockContentRepo) Upsert(_ context.Context, c *models.StaticContent) error {
	m.byType[c.Type] = c
	return nil
}

func TestGetPage_Default(t *testing.T) {
	service := NewStaticContentService(newMockContentRepo())

	page, err := service.GetPage(context.Background(), "privacy")
	if err != nil {
		t.Fatalf("ошибка получения страницы: %v", err)
	}
	if page.Title != "Privacy Policy" {
		t.Fatalf("неверный заголовок по умолчанию: %q", page.Title)
	}
	if !strings.Contains(page.Content, "GDPR") {
		t.Fatal("текст по умолчанию должен содержать раздел о GDPR")
	}
}

func TestGetPage_OverrideWins(t *testing.T) {
	repo := newMockContentRepo()
	service := NewStaticContentService(repo)

	_, err := service.UpsertPage(context.Background(), "privacy", &models.StaticContentRequest{
		Title:   "Новая политика",
		Content: "custom",
	})
	if err != nil {
		t.Fatalf("ошибка сохранения страницы: %v", err)
	}

	page, err := service.GetPage(context.Background(), "privacy")
	if err != nil {
		t.Fatalf("ошибка получения страницы: %v", err)
	}
	if page.Title != "Новая политика" || page.Content != "custom" {
		t.Fatalf("переопределение не применилось: %+v", page)
	}
}

func TestGetPage_UnknownType(t *testing.T) {
	service := NewStaticContentService(newMockContentRepo())

	page, err := service.GetPage(context.Background(), "about")
	if err != nil {
		t.Fatalf("неизвестный тип не должен быть ошибкой: %v", err)
	}
	if page.Type != "about" || page.Title != "About" || page.Content != "" {
		t.Fatalf("ожидалась пустая заглушка, получено %+v", page)
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"about", "About"},
		{"about-us", "About-Us"},
		{"faq page", "Faq Page"},
		{"ABOUT", "About"},
		{"", ""},
	}

	for _, c := range cases {
		if got := titleCase(c.in); got != c.want {
			t.Fatalf("titleCase(%q): ожидалось %q, получено %q", c.in, c.want, got)
		}
	}
}
