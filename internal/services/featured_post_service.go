package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pspk/internal/models"
	"pspk/internal/repositories"
)

type FeaturedPostService interface {
	Create(p *models.FeaturedPost) error
	Update(p *models.FeaturedPost) error
	Delete(id int64) error
	GetByID(id int64) (*models.FeaturedPost, error)
	ListPublished() ([]*models.FeaturedPost, error)
	ListAll() ([]*models.FeaturedPost, error)
}

type featuredPostService struct {
	posts repositories.FeaturedPostRepository
}

func NewFeaturedPostService(posts repositories.FeaturedPostRepository) FeaturedPostService {
	return &featuredPostService{posts: posts}
}

func (s *featuredPostService) Create(p *models.FeaturedPost) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	return s.posts.Create(p)
}

func (s *featuredPostService) Update(p *models.FeaturedPost) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	err := s.posts.Update(p)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *featuredPostService) Delete(id int64) error {
	deleted, err := s.posts.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *featuredPostService) GetByID(id int64) (*models.FeaturedPost, error) {
	p, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *featuredPostService) ListPublished() ([]*models.FeaturedPost, error) {
	return s.posts.List(true)
}

func (s *featuredPostService) ListAll() ([]*models.FeaturedPost, error) {
	return s.posts.List(false)
}
