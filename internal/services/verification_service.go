package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pspk/internal/models"
	"pspk/internal/repositories"
)

const (
	VerifyActionApprove = "approve"
	VerifyActionReject  = "reject"
)

type MemberVerification struct {
	MemberID         string `json:"member_id"`
	Status           string `json:"verification_status"`
	MembershipNumber string `json:"membership_number,omitempty"`
}

// VerificationService is the admin approve/reject path. Both outcomes
// are terminal: there is no transition back to pending.
type VerificationService interface {
	VerifyMember(memberID, action, reason string) (*MemberVerification, error)
}

type verificationService struct {
	regs   repositories.RegistrationRepository
	emails EmailService

	Now func() time.Time
}

func NewVerificationService(regs repositories.RegistrationRepository, emails EmailService) VerificationService {
	return &verificationService{regs: regs, emails: emails, Now: time.Now}
}

func (s *verificationService) VerifyMember(memberID, action, reason string) (*MemberVerification, error) {
	memberID = strings.TrimSpace(memberID)
	reason = strings.TrimSpace(reason)
	if memberID == "" {
		return nil, fmt.Errorf("%w: member_id is required", ErrValidation)
	}
	if action != VerifyActionApprove && action != VerifyActionReject {
		return nil, fmt.Errorf("%w: action must be approve or reject", ErrValidation)
	}
	if action == VerifyActionReject && reason == "" {
		return nil, fmt.Errorf("%w: a reason is required to reject", ErrValidation)
	}

	reg, err := s.regs.GetByID(memberID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNotFound
	}
	if reg.VerificationStatus != models.StatusPending {
		return nil, fmt.Errorf("%w: member already %s", ErrValidation, reg.VerificationStatus)
	}

	now := s.Now()
	switch action {
	case VerifyActionApprove:
		number, err := s.regs.ApproveWithNextNumber(reg.ID, now.Year(), now)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		if err := s.emails.SendApprovalEmail(reg.Email, reg.FullName(), number); err != nil {
			log.Printf("[verify][approve] email failed for %s: %v", reg.Email, err)
		}
		log.Printf("[verify][approve] member=%s number=%s", reg.ID, number)
		return &MemberVerification{MemberID: reg.ID, Status: models.StatusApproved, MembershipNumber: number}, nil

	default: // reject
		if err := s.regs.Reject(reg.ID, reason, now); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if err := s.emails.SendRejectionEmail(reg.Email, reg.FullName(), reason); err != nil {
			log.Printf("[verify][reject] email failed for %s: %v", reg.Email, err)
		}
		log.Printf("[verify][reject] member=%s", reg.ID)
		return &MemberVerification{MemberID: reg.ID, Status: models.StatusRejected}, nil
	}
}
