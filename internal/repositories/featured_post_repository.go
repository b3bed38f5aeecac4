package repositories

import (
	"database/sql"
	"fmt"

	"pspk/internal/models"
)

type FeaturedPostRepository interface {
	Create(p *models.FeaturedPost) error
	Update(p *models.FeaturedPost) error
	Delete(id int64) (bool, error)
	GetByID(id int64) (*models.FeaturedPost, error)
	List(publishedOnly bool) ([]*models.FeaturedPost, error)
}

type featuredPostRepository struct {
	DB *sql.DB
}

func NewFeaturedPostRepository(db *sql.DB) FeaturedPostRepository {
	return &featuredPostRepository{DB: db}
}

func (r *featuredPostRepository) Create(p *models.FeaturedPost) error {
	const q = `
		INSERT INTO featured_posts (title, excerpt, content, image_url, link_url, is_featured, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(q,
		p.Title, p.Excerpt, p.Content, p.ImageURL, p.LinkURL, p.IsFeatured, p.IsPublished, p.DisplayOrder,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("featured_post create: %w", err)
	}
	return nil
}

func (r *featuredPostRepository) Update(p *models.FeaturedPost) error {
	const q = `
		UPDATE featured_posts
		SET title=$1, excerpt=$2, content=$3, image_url=$4, link_url=$5,
		    is_featured=$6, is_published=$7, display_order=$8, updated_at=NOW()
		WHERE id=$9
	`
	res, err := r.DB.Exec(q,
		p.Title, p.Excerpt, p.Content, p.ImageURL, p.LinkURL, p.IsFeatured, p.IsPublished, p.DisplayOrder, p.ID,
	)
	if err != nil {
		return fmt.Errorf("featured_post update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *featuredPostRepository) Delete(id int64) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM featured_posts WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("featured_post delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *featuredPostRepository) GetByID(id int64) (*models.FeaturedPost, error) {
	const q = `
		SELECT id, title, excerpt, content, image_url, link_url, is_featured, is_published, display_order, created_at, updated_at
		FROM featured_posts
		WHERE id = $1
	`
	p := &models.FeaturedPost{}
	err := r.DB.QueryRow(q, id).Scan(
		&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.ImageURL, &p.LinkURL,
		&p.IsFeatured, &p.IsPublished, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("featured_post by id: %w", err)
	}
	return p, nil
}

func (r *featuredPostRepository) List(publishedOnly bool) ([]*models.FeaturedPost, error) {
	q := `
		SELECT id, title, excerpt, content, image_url, link_url, is_featured, is_published, display_order, created_at, updated_at
		FROM featured_posts
	`
	if publishedOnly {
		q += ` WHERE is_published = TRUE`
	}
	q += ` ORDER BY display_order ASC, created_at DESC`

	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("featured_post list: %w", err)
	}
	defer rows.Close()

	var res []*models.FeaturedPost
	for rows.Next() {
		p := &models.FeaturedPost{}
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.ImageURL, &p.LinkURL,
			&p.IsFeatured, &p.IsPublished, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
