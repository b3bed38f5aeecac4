package services

import (
	"errors"
	"sort"
	"time"

	"pspk/internal/models"
	"pspk/internal/repositories"
)

// In-memory stand-ins for the Postgres repositories. They mirror the
// semantics the SQL implementations guarantee: unique email/id_number,
// one unused code per (email, action), one-shot consumption.

type fakeRegistrationRepo struct {
	regs      map[string]*models.Registration // keyed by email
	deleteErr error
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{regs: map[string]*models.Registration{}}
}

func (f *fakeRegistrationRepo) Create(r *models.Registration) error {
	for _, existing := range f.regs {
		if existing.Email == r.Email || existing.IDNumber == r.IDNumber {
			return repositories.ErrDuplicate
		}
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	cp := *r
	f.regs[r.Email] = &cp
	return nil
}

func (f *fakeRegistrationRepo) GetByID(id string) (*models.Registration, error) {
	for _, r := range f.regs {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrationRepo) GetByEmail(email string) (*models.Registration, error) {
	r, ok := f.regs[email]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRegistrationRepo) GetByEmailAndIDNumber(email, idNumber string) (*models.Registration, error) {
	r, ok := f.regs[email]
	if !ok || r.IDNumber != idNumber {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRegistrationRepo) GetStatusByIDNumber(idNumber string) (*models.MembershipStatus, error) {
	for _, r := range f.regs {
		if r.IDNumber == idNumber {
			return &models.MembershipStatus{
				Exists:             true,
				VerificationStatus: r.VerificationStatus,
				MembershipNumber:   r.MembershipNumber,
			}, nil
		}
	}
	return &models.MembershipStatus{Exists: false}, nil
}

func (f *fakeRegistrationRepo) List(status string, limit, offset int) ([]*models.Registration, error) {
	all, _ := f.ListAll()
	var res []*models.Registration
	for _, r := range all {
		if status == "" || r.VerificationStatus == status {
			res = append(res, r)
		}
	}
	if offset > len(res) {
		offset = len(res)
	}
	res = res[offset:]
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (f *fakeRegistrationRepo) ListAll() ([]*models.Registration, error) {
	var res []*models.Registration
	for _, r := range f.regs {
		cp := *r
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Email < res[j].Email })
	return res, nil
}

func (f *fakeRegistrationRepo) Count(status string) (int, error) {
	res, _ := f.List(status, len(f.regs)+1, 0)
	return len(res), nil
}

func (f *fakeRegistrationRepo) Delete(email string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.regs[email]; !ok {
		return false, nil
	}
	delete(f.regs, email)
	return true, nil
}

func (f *fakeRegistrationRepo) ApproveWithNextNumber(id string, year int, verifiedAt time.Time) (string, error) {
	latest := ""
	for _, r := range f.regs {
		if r.MembershipNumber != nil && *r.MembershipNumber > latest {
			latest = *r.MembershipNumber
		}
	}
	for _, r := range f.regs {
		if r.ID == id {
			number := models.NextMembershipNumber(latest, year)
			r.VerificationStatus = models.StatusApproved
			r.MembershipNumber = &number
			r.VerifiedAt = &verifiedAt
			return number, nil
		}
	}
	return "", errors.New("no row updated")
}

func (f *fakeRegistrationRepo) Reject(id, reason string, verifiedAt time.Time) error {
	for _, r := range f.regs {
		if r.ID == id {
			r.VerificationStatus = models.StatusRejected
			r.RejectionReason = &reason
			r.VerifiedAt = &verifiedAt
			return nil
		}
	}
	return errors.New("no row updated")
}

type fakeOTPRepo struct {
	rows []*models.OTPCode
}

func (f *fakeOTPRepo) Issue(email, code, action string, expiresAt time.Time) error {
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.Email == email && row.Action == action && !row.Used {
			continue
		}
		kept = append(kept, row)
	}
	f.rows = append(kept, &models.OTPCode{
		ID:        int64(len(f.rows) + 1),
		Email:     email,
		Code:      code,
		Action:    action,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeOTPRepo) Consume(email, code, action string, now time.Time) (*models.OTPCode, error) {
	for _, row := range f.rows {
		if row.Email == email && row.Code == code && row.Action == action &&
			!row.Used && row.ExpiresAt.After(now) {
			row.Used = true
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

// latestCode returns the most recently issued code for the pair,
// regardless of used state.
func (f *fakeOTPRepo) latestCode(email, action string) string {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].Email == email && f.rows[i].Action == action {
			return f.rows[i].Code
		}
	}
	return ""
}

type fakeResignationLogRepo struct {
	entries []*models.ResignationLogEntry
}

func (f *fakeResignationLogRepo) Create(entry *models.ResignationLogEntry) error {
	entry.ID = int64(len(f.entries) + 1)
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)
	return nil
}

type fakeDataRequestRepo struct {
	created []*models.DataRequest
}

func (f *fakeDataRequestRepo) Create(dr *models.DataRequest) error {
	dr.CreatedAt = time.Now()
	f.created = append(f.created, dr)
	return nil
}

func (f *fakeDataRequestRepo) List(limit, offset int) ([]*models.DataRequest, error) {
	return f.created, nil
}

// fakeEmailService records every send and can be told to fail, so
// tests can assert primary operations succeed independently of
// notification outcome.
type fakeEmailService struct {
	sent []string
	err  error
}

func (f *fakeEmailService) record(tag string) error {
	f.sent = append(f.sent, tag)
	return f.err
}

func (f *fakeEmailService) SendOTPEmail(email, code, action string) error {
	return f.record("otp:" + email + ":" + action)
}
func (f *fakeEmailService) SendWelcomeEmail(email, firstName string) error {
	return f.record("welcome:" + email)
}
func (f *fakeEmailService) SendApprovalEmail(email, fullName, membershipNumber string) error {
	return f.record("approval:" + email + ":" + membershipNumber)
}
func (f *fakeEmailService) SendRejectionEmail(email, fullName, reason string) error {
	return f.record("rejection:" + email)
}
func (f *fakeEmailService) SendResignationEmail(email, fullName string) error {
	return f.record("resignation:" + email)
}
func (f *fakeEmailService) SendDataRequestConfirmation(email, requestType string) error {
	return f.record("data-request:" + email + ":" + requestType)
}
func (f *fakeEmailService) NotifyAdminDataRequest(dr *models.DataRequest) error {
	return f.record("admin-alert:" + dr.Email)
}
func (f *fakeEmailService) SendContactRelay(c *models.Contact) error {
	return f.record("contact:" + c.Email)
}
func (f *fakeEmailService) SendVolunteerAck(email, name string) error {
	return f.record("volunteer:" + email)
}
