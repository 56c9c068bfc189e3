package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/models"
)

type mockSubscriberRepo struct {
	byEmail map[string]*models.Subscriber
	byID    map[string]*models.Subscriber
	last    *models.Subscriber
}

func newMockSubscriberRepo() *mockSubscriberRepo {
	return &mockSubscriberRepo{
		byEmail: make(map[string]*models.Subscriber),
		byID:    make(map[string]*models.Subscriber),
	}
}

func (m *mockSubscriberRepo) add(s *models.Subscriber) {
	m.byEmail[s.Email] = s
	m.byID[s.ID] = s
}

func (m *mockSubscriberRepo) Create(_ context.Context, s *models.Subscriber) error {
	if _, ok := m.byEmail[s.Email]; ok {
		return apperrors.ErrAlreadySubscribed
	}
	m.last = s
	m.add(s)
	return nil
}

func (m *mockSubscriberRepo) EmailExists(_ context.Context, email string) (bool, error) {
	// Любая запись, активная или нет
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockSubscriberRepo) GetActive(_ context.Context, interest string, _ int) ([]*models.Subscriber, error) {
	var list []*models.Subscriber
	for _, s := range m.byID {
		if !s.IsActive {
			continue
		}
		if interest != "" {
			found := false
			for _, i := range s.Interests {
				if i == interest {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		list = append(list, s)
	}
	return list, nil
}

func (m *mockSubscriberRepo) Deactivate(_ context.Context, id string) error {
	s, ok := m.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	s.IsActive = false
	return nil
}

func (m *mockSubscriberRepo) CountActive(_ context.Context) (int, error) {
	n := 0
	for _, s := range m.byID {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *mockSubscriberRepo) CountByInterest(_ context.Context) (map[string]int, error) {
	out := make(map[string]int)
	for _, s := range m.byID {
		if !s.IsActive {
			continue
		}
		for _, i := range s.Interests {
			out[i]++
		}
	}
	return out, nil
}

func TestSubscribe(t *testing.T) {
	repo := newMockSubscriberRepo()
	service := NewSubscriberService(repo)

	sub, err := service.Subscribe(context.Background(), &models.SubscribeRequest{Email: "Reader@Example.com"})
	if err != nil {
		t.Fatalf("ошибка подписки: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Fatalf("email не нормализован: %q", sub.Email)
	}
	if !sub.IsActive || !sub.GDPRConsent {
		t.Fatal("новый подписчик должен быть активным с согласием по умолчанию")
	}
	if sub.Interests == nil {
		t.Fatal("interests не должны быть nil")
	}
}

func TestSubscribe_Conflict(t *testing.T) {
	repo := newMockSubscriberRepo()
	service := NewSubscriberService(repo)

	repo.add(&models.Subscriber{ID: "s1", Email: "reader@example.com", IsActive: true})

	_, err := service.Subscribe(context.Background(), &models.SubscribeRequest{Email: "reader@example.com"})
	if !errors.Is(err, apperrors.ErrAlreadySubscribed) {
		t.Fatalf("ожидался ErrAlreadySubscribed, получено %v", err)
	}
}

func TestSubscribe_ConflictEvenIfInactive(t *testing.T) {
	repo := newMockSubscriberRepo()
	service := NewSubscriberService(repo)

	// Отписанный email повторно подписаться не может
	repo.add(&models.Subscriber{ID: "s1", Email: "reader@example.com", IsActive: false})

	_, err := service.Subscribe(context.Background(), &models.SubscribeRequest{Email: "reader@example.com"})
	if !errors.Is(err, apperrors.ErrAlreadySubscribed) {
		t.Fatalf("ожидался ErrAlreadySubscribed для отписанного email, получено %v", err)
	}
}

func TestUnsubscribe_HidesFromList(t *testing.T) {
	repo := newMockSubscriberRepo()
	service := NewSubscriberService(repo)

	repo.add(&models.Subscriber{ID: "s1", Email: "a@example.com", IsActive: true, SubscribedAt: time.Now()})

	if err := service.Unsubscribe(context.Background(), "s1"); err != nil {
		t.Fatalf("ошибка отписки: %v", err)
	}

	list, err := service.List(context.Background(), "")
	if err != nil {
		t.Fatalf("ошибка списка: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("отписанный не должен попадать в список, получено %d", len(list))
	}

	// Запись остаётся — мягкое удаление
	if _, ok := repo.byID["s1"]; !ok {
		t.Fatal("запись должна сохраниться после отписки")
	}
}

func TestSubscriberStats(t *testing.T) {
	repo := newMockSubscriberRepo()
	service := NewSubscriberService(repo)

	repo.add(&models.Subscriber{ID: "s1", Email: "a@example.com", IsActive: true, Interests: []string{"sleep-rest", "mental-health"}})
	repo.add(&models.Subscriber{ID: "s2", Email: "b@example.com", IsActive: true, Interests: []string{"sleep-rest"}})
	repo.add(&models.Subscriber{ID: "s3", Email: "c@example.com", IsActive: false, Interests: []string{"sleep-rest"}})

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("ошибка статистики: %v", err)
	}
	if stats.Total != 2 {
		t.Fatalf("total: ожидалось 2, получено %d", stats.Total)
	}
	if stats.ByInterest["sleep-rest"] != 2 || stats.ByInterest["mental-health"] != 1 {
		t.Fatalf("разбивка по интересам неверна: %v", stats.ByInterest)
	}
}
