package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/models"
)

type CategoryRepo interface {
	GetAll(ctx context.Context) ([]*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepo struct{ db *pgxpool.Pool }

func NewCategoryRepo(db *pgxpool.Pool) CategoryRepo { return &categoryRepo{db: db} }

const categoryColumns = `id, name, slug, description, image_url, meta_title, meta_description, created_at`

func (r *categoryRepo) GetAll(ctx context.Context) ([]*models.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`
	return r.one(ctx, q, slug)
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return r.one(ctx, q, id)
}

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	const q = `
		INSERT INTO categories (id, name, slug, description, image_url, meta_title, meta_description, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.db.Exec(ctx, q,
		c.ID, c.Name, c.Slug, c.Description, c.ImageURL, c.MetaTitle, c.MetaDescription, c.CreatedAt,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrSlugTaken
	}
	return err
}

func (r *categoryRepo) Update(ctx context.Context, c *models.Category) error {
	const q = `
		UPDATE categories
		SET name=$1, slug=$2, description=$3, image_url=$4, meta_title=$5, meta_description=$6
		WHERE id=$7
	`
	tag, err := r.db.Exec(ctx, q,
		c.Name, c.Slug, c.Description, c.ImageURL, c.MetaTitle, c.MetaDescription, c.ID,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrSlugTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepo) one(ctx context.Context, q string, arg any) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, q, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.ImageURL, &c.MetaTitle, &c.MetaDescription, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
