package models

import "time"

type FeaturedPost struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"image_url"`
	LinkURL      string    `json:"link_url"`
	IsFeatured   bool      `json:"is_featured"`
	IsPublished  bool      `json:"is_published"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
