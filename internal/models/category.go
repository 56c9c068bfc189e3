package models

import "time"

type Category struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	ImageURL        *string   `json:"image_url,omitempty"`
	MetaTitle       *string   `json:"meta_title,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// swagger:model CategoryRequest
type CategoryRequest struct {
	Name            string  `json:"name" example:"Sleep & Rest"`
	Slug            string  `json:"slug" example:"sleep-rest"`
	Description     string  `json:"description"`
	ImageURL        *string `json:"image_url,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
}
