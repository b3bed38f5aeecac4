package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"pspk/internal/models"
)

type VolunteerRepository interface {
	Create(v *models.Volunteer) error
}

type volunteerRepository struct {
	DB *sql.DB
}

func NewVolunteerRepository(db *sql.DB) VolunteerRepository {
	return &volunteerRepository{DB: db}
}

func (r *volunteerRepository) Create(v *models.Volunteer) error {
	const q = `
		INSERT INTO volunteers (name, email, phone, county, areas_of_interest, availability)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(q,
		v.Name, v.Email, v.Phone, v.County, pq.Array(v.AreasOfInterest), v.Availability,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("volunteer create: %w", err)
	}
	return nil
}
