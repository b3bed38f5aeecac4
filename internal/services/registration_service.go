package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"pspk/internal/models"
	"pspk/internal/repositories"
)

// ErrAlreadyRegistered is the soft duplicate outcome: the email or
// national ID is already on file. Uniqueness is guaranteed by the
// database indexes, not by a pre-check.
var ErrAlreadyRegistered = errors.New("already registered")

type RegistrationService interface {
	Register(reg *models.Registration) error
	CheckStatus(idNumber string) (*models.MembershipStatus, error)
	GetByID(id string) (*models.Registration, error)
	List(status string, page, size int) ([]*models.Registration, int, error)
}

type registrationService struct {
	regs     repositories.RegistrationRepository
	emails   EmailService
	telegram *TelegramService
}

func NewRegistrationService(regs repositories.RegistrationRepository, emails EmailService, telegram *TelegramService) RegistrationService {
	return &registrationService{regs: regs, emails: emails, telegram: telegram}
}

func (s *registrationService) Register(reg *models.Registration) error {
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	reg.IDNumber = strings.TrimSpace(reg.IDNumber)
	if reg.Email == "" || reg.IDNumber == "" {
		return fmt.Errorf("%w: email and id_number are required", ErrValidation)
	}
	if !reg.ConsentDataProcessing {
		return fmt.Errorf("%w: consent to data processing is required", ErrValidation)
	}
	for _, sig := range reg.SpecialInterestGroups {
		if !models.IsValidSIG(sig) {
			return fmt.Errorf("%w: unknown special interest group %q", ErrValidation, sig)
		}
	}

	reg.ID = uuid.NewString()
	reg.VerificationStatus = models.StatusPending

	if err := s.regs.Create(reg); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrAlreadyRegistered
		}
		return err
	}

	if err := s.emails.SendWelcomeEmail(reg.Email, reg.FirstName); err != nil {
		log.Printf("[register] welcome email failed for %s: %v", reg.Email, err)
	}
	s.telegram.NotifyNewRegistration(reg)

	log.Printf("[register] created id=%s county=%s", reg.ID, reg.County)
	return nil
}

// CheckStatus answers the public member-check page with a narrow
// projection only, never the underlying row.
func (s *registrationService) CheckStatus(idNumber string) (*models.MembershipStatus, error) {
	idNumber = strings.TrimSpace(idNumber)
	if idNumber == "" {
		return nil, fmt.Errorf("%w: id_number is required", ErrValidation)
	}
	return s.regs.GetStatusByIDNumber(idNumber)
}

func (s *registrationService) GetByID(id string) (*models.Registration, error) {
	reg, err := s.regs.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNotFound
	}
	return reg, nil
}

func (s *registrationService) List(status string, page, size int) ([]*models.Registration, int, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}
	regs, err := s.regs.List(status, size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.regs.Count(status)
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}
