package models

import "time"

type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Excerpt         string    `json:"excerpt"`
	Content         string    `json:"content"`
	CategoryID      *string   `json:"category_id"`
	FeaturedImage   *string   `json:"featured_image,omitempty"`
	MetaTitle       *string   `json:"meta_title,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	IsFeatured      bool      `json:"is_featured"`
	IsPublished     bool      `json:"is_published"`
	ReadingTime     int       `json:"reading_time"`
	WhatsNew        *string   `json:"whats_new,omitempty"`
	Views           int64     `json:"views"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Заполняется только при выдаче одной статьи по slug.
	Category *Category `json:"category,omitempty"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title           string  `json:"title" example:"How Sleep Affects Mental Health"`
	Slug            string  `json:"slug" example:"how-sleep-affects-mental-health"`
	Excerpt         string  `json:"excerpt"`
	Content         string  `json:"content" example:"<p>Контент</p>"`
	CategoryID      string  `json:"category_id"`
	FeaturedImage   *string `json:"featured_image,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	IsFeatured      bool    `json:"is_featured"`
	IsPublished     *bool   `json:"is_published,omitempty"`
	ReadingTime     *int    `json:"reading_time,omitempty"`
	WhatsNew        *string `json:"whats_new,omitempty"`
}

// UpdateArticleRequest — частичное обновление: применяются только непустые поля.
// swagger:model UpdateArticleRequest
type UpdateArticleRequest struct {
	Title           *string `json:"title,omitempty"`
	Slug            *string `json:"slug,omitempty"`
	Excerpt         *string `json:"excerpt,omitempty"`
	Content         *string `json:"content,omitempty"`
	CategoryID      *string `json:"category_id,omitempty"`
	FeaturedImage   *string `json:"featured_image,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	IsFeatured      *bool   `json:"is_featured,omitempty"`
	IsPublished     *bool   `json:"is_published,omitempty"`
	ReadingTime     *int    `json:"reading_time,omitempty"`
	WhatsNew        *string `json:"whats_new,omitempty"`
}

// ArticleFilter — фильтры публичного списка статей.
type ArticleFilter struct {
	CategorySlug string
	Featured     *bool
	Limit        int
	Skip         int
}
