package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/models"
)

type SubscriberRepo interface {
	Create(ctx context.Context, s *models.Subscriber) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetActive(ctx context.Context, interest string, limit int) ([]*models.Subscriber, error)
	Deactivate(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
	CountByInterest(ctx context.Context) (map[string]int, error)
}

type subscriberRepo struct{ db *pgxpool.Pool }

func NewSubscriberRepo(db *pgxpool.Pool) SubscriberRepo { return &subscriberRepo{db: db} }

func (r *subscriberRepo) Create(ctx context.Context, s *models.Subscriber) error {
	const q = `
		INSERT INTO subscribers (id, email, interests, gdpr_consent, is_active, subscribed_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	_, err := r.db.Exec(ctx, q, s.ID, s.Email, s.Interests, s.GDPRConsent, s.IsActive, s.SubscribedAt)
	if isUniqueViolation(err) {
		return apperrors.ErrAlreadySubscribed
	}
	return err
}

// EmailExists проверяет наличие любой записи с таким email, активной или нет.
// Отписанный email повторно подписаться не может.
func (r *subscriberRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM subscribers WHERE email = $1)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, email).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *subscriberRepo) GetActive(ctx context.Context, interest string, limit int) ([]*models.Subscriber, error) {
	q := `
		SELECT id, email, interests, gdpr_consent, is_active, subscribed_at
		FROM subscribers
		WHERE is_active = TRUE
	`
	args := []interface{}{limit}
	if interest != "" {
		q += ` AND $2 = ANY(interests)`
		args = append(args, interest)
	}
	q += ` ORDER BY subscribed_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Subscriber
	for rows.Next() {
		var s models.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Interests, &s.GDPRConsent, &s.IsActive, &s.SubscribedAt); err != nil {
			return nil, err
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Deactivate — мягкое удаление: запись остаётся, is_active снимается.
func (r *subscriberRepo) Deactivate(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE subscribers SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *subscriberRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subscribers WHERE is_active = TRUE`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountByInterest разворачивает список интересов каждой записи в строки
// и группирует: подписчик с тремя интересами попадает в три корзины.
func (r *subscriberRepo) CountByInterest(ctx context.Context) (map[string]int, error) {
	const q = `
		SELECT unnest(interests) AS interest, COUNT(*)
		FROM subscribers
		WHERE is_active = TRUE
		GROUP BY interest
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var interest string
		var n int
		if err := rows.Scan(&interest, &n); err != nil {
			return nil, err
		}
		out[interest] = n
	}
	return out, rows.Err()
}
