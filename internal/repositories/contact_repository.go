package repositories

import (
	"database/sql"
	"fmt"

	"pspk/internal/models"
)

type ContactRepository interface {
	Create(c *models.Contact) error
}

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(c *models.Contact) error {
	const q = `
		INSERT INTO contacts (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q, c.Name, c.Email, c.Subject, c.Message).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("contact create: %w", err)
	}
	return nil
}
