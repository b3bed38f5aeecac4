package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"pspk/internal/models"
)

type RegistrationRepository interface {
	Create(r *models.Registration) error
	GetByID(id string) (*models.Registration, error)
	GetByEmail(email string) (*models.Registration, error)
	GetByEmailAndIDNumber(email, idNumber string) (*models.Registration, error)
	GetStatusByIDNumber(idNumber string) (*models.MembershipStatus, error)
	List(status string, limit, offset int) ([]*models.Registration, error)
	ListAll() ([]*models.Registration, error)
	Count(status string) (int, error)
	Delete(email string) (bool, error)

	// ApproveWithNextNumber allocates the next membership number for the
	// year and marks the registration approved, inside one transaction.
	ApproveWithNextNumber(id string, year int, verifiedAt time.Time) (string, error)
	Reject(id, reason string, verifiedAt time.Time) error
}

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &registrationRepository{DB: db}
}

const registrationColumns = `
	id, email, id_number, first_name, last_name, phone, date_of_birth,
	gender, county, constituency, ward, disability_status,
	special_interest_groups, consent_data_processing, consent_communications,
	verification_status, membership_number, rejection_reason, verified_at,
	created_at, updated_at
`

func scanRegistration(row interface{ Scan(dest ...any) error }) (*models.Registration, error) {
	r := &models.Registration{}
	var (
		membershipNumber sql.NullString
		rejectionReason  sql.NullString
		verifiedAt       sql.NullTime
	)
	err := row.Scan(
		&r.ID, &r.Email, &r.IDNumber, &r.FirstName, &r.LastName, &r.Phone, &r.DateOfBirth,
		&r.Gender, &r.County, &r.Constituency, &r.Ward, &r.DisabilityStatus,
		pq.Array(&r.SpecialInterestGroups), &r.ConsentDataProcessing, &r.ConsentCommunications,
		&r.VerificationStatus, &membershipNumber, &rejectionReason, &verifiedAt,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if membershipNumber.Valid {
		s := membershipNumber.String
		r.MembershipNumber = &s
	}
	if rejectionReason.Valid {
		s := rejectionReason.String
		r.RejectionReason = &s
	}
	if verifiedAt.Valid {
		t := verifiedAt.Time
		r.VerifiedAt = &t
	}
	return r, nil
}

func (repo *registrationRepository) Create(r *models.Registration) error {
	const q = `
		INSERT INTO registrations (
			id, email, id_number, first_name, last_name, phone, date_of_birth,
			gender, county, constituency, ward, disability_status,
			special_interest_groups, consent_data_processing, consent_communications,
			verification_status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING created_at, updated_at
	`
	err := repo.DB.QueryRow(q,
		r.ID, r.Email, r.IDNumber, r.FirstName, r.LastName, r.Phone, r.DateOfBirth,
		r.Gender, r.County, r.Constituency, r.Ward, r.DisabilityStatus,
		pq.Array(r.SpecialInterestGroups), r.ConsentDataProcessing, r.ConsentCommunications,
		r.VerificationStatus,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (repo *registrationRepository) GetByID(id string) (*models.Registration, error) {
	q := `SELECT` + registrationColumns + `FROM registrations WHERE id = $1`
	r, err := scanRegistration(repo.DB.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("registration by id: %w", err)
	}
	return r, nil
}

func (repo *registrationRepository) GetByEmail(email string) (*models.Registration, error) {
	q := `SELECT` + registrationColumns + `FROM registrations WHERE email = $1`
	r, err := scanRegistration(repo.DB.QueryRow(q, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("registration by email: %w", err)
	}
	return r, nil
}

func (repo *registrationRepository) GetByEmailAndIDNumber(email, idNumber string) (*models.Registration, error) {
	q := `SELECT` + registrationColumns + `FROM registrations WHERE email = $1 AND id_number = $2`
	r, err := scanRegistration(repo.DB.QueryRow(q, email, idNumber))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("registration by email+id: %w", err)
	}
	return r, nil
}

// GetStatusByIDNumber answers the public member-check without exposing
// the underlying row.
func (repo *registrationRepository) GetStatusByIDNumber(idNumber string) (*models.MembershipStatus, error) {
	const q = `
		SELECT verification_status, membership_number
		FROM registrations
		WHERE id_number = $1
	`
	var (
		status sql.NullString
		number sql.NullString
	)
	err := repo.DB.QueryRow(q, idNumber).Scan(&status, &number)
	if err == sql.ErrNoRows {
		return &models.MembershipStatus{Exists: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("membership status: %w", err)
	}
	ms := &models.MembershipStatus{Exists: true, VerificationStatus: status.String}
	if number.Valid {
		n := number.String
		ms.MembershipNumber = &n
	}
	return ms, nil
}

func (repo *registrationRepository) List(status string, limit, offset int) ([]*models.Registration, error) {
	q := `SELECT` + registrationColumns + `FROM registrations`
	args := []any{}
	if status != "" {
		q += ` WHERE verification_status = $1`
		args = append(args, status)
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.DB.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("registration list: %w", err)
	}
	defer rows.Close()

	var res []*models.Registration
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func (repo *registrationRepository) ListAll() ([]*models.Registration, error) {
	q := `SELECT` + registrationColumns + `FROM registrations ORDER BY created_at ASC`
	rows, err := repo.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("registration list all: %w", err)
	}
	defer rows.Close()

	var res []*models.Registration
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func (repo *registrationRepository) Count(status string) (int, error) {
	var c int
	var err error
	if status == "" {
		err = repo.DB.QueryRow(`SELECT COUNT(*) FROM registrations`).Scan(&c)
	} else {
		err = repo.DB.QueryRow(`SELECT COUNT(*) FROM registrations WHERE verification_status = $1`, status).Scan(&c)
	}
	return c, err
}

func (repo *registrationRepository) Delete(email string) (bool, error) {
	res, err := repo.DB.Exec(`DELETE FROM registrations WHERE email = $1`, email)
	if err != nil {
		return false, fmt.Errorf("registration delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (repo *registrationRepository) ApproveWithNextNumber(id string, year int, verifiedAt time.Time) (string, error) {
	tx, err := repo.DB.Begin()
	if err != nil {
		return "", fmt.Errorf("approve begin: %w", err)
	}
	defer tx.Rollback()

	// Advisory lock serializes concurrent approvals for the same year so
	// two requests in the same tick cannot read the same max and mint
	// duplicate numbers. The UNIQUE index on membership_number is the
	// backstop.
	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext('membership_number_' || $1))`, fmt.Sprintf("%d", year)); err != nil {
		return "", fmt.Errorf("approve lock: %w", err)
	}
	const maxQ = `
		SELECT COALESCE(MAX(membership_number), '')
		FROM registrations
		WHERE membership_number LIKE 'PSP-K-' || $1 || '-%'
	`
	var latest string
	if err := tx.QueryRow(maxQ, fmt.Sprintf("%d", year)).Scan(&latest); err != nil {
		return "", fmt.Errorf("approve max number: %w", err)
	}
	number := models.NextMembershipNumber(latest, year)

	const updQ = `
		UPDATE registrations
		SET verification_status = 'approved',
		    membership_number = $1,
		    rejection_reason = NULL,
		    verified_at = $2,
		    updated_at = NOW()
		WHERE id = $3
	`
	res, err := tx.Exec(updQ, number, verifiedAt, id)
	if err != nil {
		return "", mapUniqueViolation(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", sql.ErrNoRows
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("approve commit: %w", err)
	}
	return number, nil
}

func (repo *registrationRepository) Reject(id, reason string, verifiedAt time.Time) error {
	const q = `
		UPDATE registrations
		SET verification_status = 'rejected',
		    rejection_reason = $1,
		    verified_at = $2,
		    updated_at = NOW()
		WHERE id = $3
	`
	res, err := repo.DB.Exec(q, reason, verifiedAt, id)
	if err != nil {
		return fmt.Errorf("registration reject: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
