package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/models"
)

type StaticContentRepo interface {
	GetByType(ctx context.Context, pageType string) (*models.StaticContent, error)
	Upsert(ctx context.Context, c *models.StaticContent) error
}

type staticContentRepo struct{ db *pgxpool.Pool }

func NewStaticContentRepo(db *pgxpool.Pool) StaticContentRepo {
	return &staticContentRepo{db: db}
}

func (r *staticContentRepo) GetByType(ctx context.Context, pageType string) (*models.StaticContent, error) {
	const q = `SELECT id, type, title, content FROM static_content WHERE type = $1`

	var c models.StaticContent
	err := r.db.QueryRow(ctx, q, pageType).Scan(&c.ID, &c.Type, &c.Title, &c.Content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *staticContentRepo) Upsert(ctx context.Context, c *models.StaticContent) error {
	const q = `
		INSERT INTO static_content (id, type, title, content)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (type) DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content
	`
	_, err := r.db.Exec(ctx, q, c.ID, c.Type, c.Title, c.Content)
	return err
}
