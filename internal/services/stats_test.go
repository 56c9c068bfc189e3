package services

import (
	"context"
	"testing"

	"restfulmind/internal/models"
)

func TestDashboard(t *testing.T) {
	articles := newMockArticleRepo()
	articles.total = 10
	articles.published = 7
	articles.viewsSum = 1234

	subs := newMockSubscriberRepo()
	subs.add(&models.Subscriber{ID: "s1", Email: "a@example.com", IsActive: true})
	subs.add(&models.Subscriber{ID: "s2", Email: "b@example.com", IsActive: false})

	service := NewStatsService(articles, subs)

	stats, err := service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("ошибка дашборда: %v", err)
	}
	if stats.TotalArticles != 10 || stats.PublishedArticles != 7 {
		t.Fatalf("счётчики статей неверны: %+v", stats)
	}
	if stats.TotalSubscribers != 1 {
		t.Fatalf("в подписчиках учитываются только активные, получено %d", stats.TotalSubscribers)
	}
	if stats.TotalViews != 1234 {
		t.Fatalf("сумма просмотров неверна: %d", stats.TotalViews)
	}
}

func TestDashboard_EmptyBase(t *testing.T) {
	service := NewStatsService(newMockArticleRepo(), newMockSubscriberRepo())

	stats, err := service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("ошибка дашборда: %v", err)
	}
	if stats.TotalArticles != 0 || stats.TotalViews != 0 || stats.TotalSubscribers != 0 {
		t.Fatalf("на пустой базе все счётчики должны быть нулевыми: %+v", stats)
	}
}
