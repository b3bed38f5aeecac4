package repositories

import (
	"database/sql"
	"fmt"

	"pspk/internal/models"
)

type AdminUserRepository interface {
	GetByEmail(email string) (*models.AdminUser, error)
}

type adminUserRepository struct {
	DB *sql.DB
}

func NewAdminUserRepository(db *sql.DB) AdminUserRepository {
	return &adminUserRepository{DB: db}
}

func (r *adminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	const q = `
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE email = $1
	`
	u := &models.AdminUser{}
	err := r.DB.QueryRow(q, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("admin_user by email: %w", err)
	}
	return u, nil
}
