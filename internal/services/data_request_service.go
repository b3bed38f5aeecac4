package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"pspk/internal/models"
	"pspk/internal/repositories"
)

// DataRequestService records correction/deletion requests. Processing
// is manual by policy: nothing here mutates a request after creation,
// the data office follows through within the documented 14-day window.
type DataRequestService interface {
	Submit(email, requestType string, reason, details *string) (*models.DataRequest, error)
	List(limit, offset int) ([]*models.DataRequest, error)
}

type dataRequestService struct {
	regs     repositories.RegistrationRepository
	requests repositories.DataRequestRepository
	emails   EmailService
	telegram *TelegramService
}

func NewDataRequestService(
	regs repositories.RegistrationRepository,
	requests repositories.DataRequestRepository,
	emails EmailService,
	telegram *TelegramService,
) DataRequestService {
	return &dataRequestService{regs: regs, requests: requests, emails: emails, telegram: telegram}
}

func (s *dataRequestService) Submit(email, requestType string, reason, details *string) (*models.DataRequest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if requestType != models.RequestCorrection && requestType != models.RequestDeletion {
		return nil, fmt.Errorf("%w: unknown request type %q", ErrValidation, requestType)
	}

	reg, err := s.regs.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNotFound
	}

	// details stays optional here even though the web form requires it.
	dr := &models.DataRequest{
		ID:          uuid.NewString(),
		Email:       email,
		RequestType: requestType,
		Reason:      reason,
		Details:     details,
		Status:      "pending",
	}
	if err := s.requests.Create(dr); err != nil {
		return nil, err
	}

	if err := s.emails.SendDataRequestConfirmation(email, requestType); err != nil {
		log.Printf("[data-request] confirmation email failed for %s: %v", email, err)
	}
	if err := s.emails.NotifyAdminDataRequest(dr); err != nil {
		log.Printf("[data-request] admin notification failed: %v", err)
	}
	s.telegram.NotifyDataRequest(dr)

	log.Printf("[data-request] created id=%s type=%s", dr.ID, dr.RequestType)
	return dr, nil
}

func (s *dataRequestService) List(limit, offset int) ([]*models.DataRequest, error) {
	return s.requests.List(limit, offset)
}
