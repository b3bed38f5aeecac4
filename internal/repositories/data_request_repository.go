package repositories

import (
	"database/sql"
	"fmt"

	"pspk/internal/models"
)

type DataRequestRepository interface {
	Create(dr *models.DataRequest) error
	List(limit, offset int) ([]*models.DataRequest, error)
}

type dataRequestRepository struct {
	DB *sql.DB
}

func NewDataRequestRepository(db *sql.DB) DataRequestRepository {
	return &dataRequestRepository{DB: db}
}

func (r *dataRequestRepository) Create(dr *models.DataRequest) error {
	const q = `
		INSERT INTO data_requests (id, email, request_type, reason, details, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	if err := r.DB.QueryRow(q, dr.ID, dr.Email, dr.RequestType, dr.Reason, dr.Details, dr.Status).Scan(&dr.CreatedAt); err != nil {
		return fmt.Errorf("data_request create: %w", err)
	}
	return nil
}

func (r *dataRequestRepository) List(limit, offset int) ([]*models.DataRequest, error) {
	const q = `
		SELECT id, email, request_type, reason, details, status, created_at
		FROM data_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("data_request list: %w", err)
	}
	defer rows.Close()

	var res []*models.DataRequest
	for rows.Next() {
		dr := &models.DataRequest{}
		var reason, details sql.NullString
		if err := rows.Scan(&dr.ID, &dr.Email, &dr.RequestType, &reason, &details, &dr.Status, &dr.CreatedAt); err != nil {
			return nil, err
		}
		if reason.Valid {
			s := reason.String
			dr.Reason = &s
		}
		if details.Valid {
			s := details.String
			dr.Details = &s
		}
		res = append(res, dr)
	}
	return res, rows.Err()
}
