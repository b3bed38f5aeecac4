package repositories

import (
	"database/sql"
	"fmt"

	"pspk/internal/models"
)

type ResignationLogRepository interface {
	Create(entry *models.ResignationLogEntry) error
}

type resignationLogRepository struct {
	DB *sql.DB
}

func NewResignationLogRepository(db *sql.DB) ResignationLogRepository {
	return &resignationLogRepository{DB: db}
}

func (r *resignationLogRepository) Create(entry *models.ResignationLogEntry) error {
	const q = `
		INSERT INTO resignation_log (email, id_number, full_name, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q, entry.Email, entry.IDNumber, entry.FullName, entry.Reason).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("resignation_log create: %w", err)
	}
	return nil
}
