package services

import (
	"fmt"
	"log"
	"strings"

	"pspk/internal/models"
	"pspk/internal/repositories"
)

// ResignationService removes a membership permanently. The caller must
// have passed OTP verification for action_type=resignation; this
// service does not re-check OTP state.
type ResignationService interface {
	Resign(email string, reason *string) error
}

type resignationService struct {
	regs   repositories.RegistrationRepository
	logs   repositories.ResignationLogRepository
	emails EmailService
}

func NewResignationService(regs repositories.RegistrationRepository, logs repositories.ResignationLogRepository, emails EmailService) ResignationService {
	return &resignationService{regs: regs, logs: logs, emails: emails}
}

// Resign writes the audit log entry first and deletes the registration
// second. The ordering is deliberate: if the delete fails, the audit
// row survives and the caller sees the failure and can retry, with the
// membership still intact.
func (s *resignationService) Resign(email string, reason *string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	reg, err := s.regs.GetByEmail(email)
	if err != nil {
		return err
	}
	if reg == nil {
		return ErrNotFound
	}

	entry := &models.ResignationLogEntry{
		Email:    reg.Email,
		IDNumber: reg.IDNumber,
		FullName: reg.FullName(),
		Reason:   reason,
	}
	if err := s.logs.Create(entry); err != nil {
		return fmt.Errorf("resignation log: %w", err)
	}

	deleted, err := s.regs.Delete(email)
	if err != nil {
		return fmt.Errorf("delete registration (audit entry retained): %w", err)
	}
	if !deleted {
		return fmt.Errorf("delete registration (audit entry retained): no row removed")
	}

	if err := s.emails.SendResignationEmail(reg.Email, reg.FullName()); err != nil {
		log.Printf("[resignation] confirmation email failed for %s: %v", reg.Email, err)
	}
	log.Printf("[resignation] processed email=%s", reg.Email)
	return nil
}
