package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"pspk/internal/models"
)

type OTPRepository interface {
	// Issue deletes prior unused codes for (email, action) and inserts
	// the new one within a single transaction, so at most one unused
	// code exists per pair.
	Issue(email, code, action string, expiresAt time.Time) error

	// Consume atomically flips used=false to used=true on the matching
	// unexpired code. Returns (nil, nil) when nothing matched; a second
	// consume of the same code always lands here.
	Consume(email, code, action string, now time.Time) (*models.OTPCode, error)
}

type otpRepository struct {
	DB *sql.DB
}

func NewOTPRepository(db *sql.DB) OTPRepository {
	return &otpRepository{DB: db}
}

func (r *otpRepository) Issue(email, code, action string, expiresAt time.Time) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("otp issue begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM otp_codes WHERE email = $1 AND action_type = $2 AND used = FALSE`,
		email, action,
	); err != nil {
		return fmt.Errorf("otp cleanup: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO otp_codes (email, code, action_type, expires_at, used) VALUES ($1, $2, $3, $4, FALSE)`,
		email, code, action, expiresAt,
	); err != nil {
		return fmt.Errorf("otp insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("otp issue commit: %w", err)
	}
	return nil
}

func (r *otpRepository) Consume(email, code, action string, now time.Time) (*models.OTPCode, error) {
	const q = `
		UPDATE otp_codes
		SET used = TRUE
		WHERE email = $1 AND code = $2 AND action_type = $3
		  AND used = FALSE AND expires_at > $4
		RETURNING id, email, code, action_type, expires_at, used, created_at
	`
	otp := &models.OTPCode{}
	err := r.DB.QueryRow(q, email, code, action, now).Scan(
		&otp.ID, &otp.Email, &otp.Code, &otp.Action, &otp.ExpiresAt, &otp.Used, &otp.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("otp consume: %w", err)
	}
	return otp, nil
}
