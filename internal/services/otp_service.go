package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"pspk/internal/models"
	"pspk/internal/repositories"
	"pspk/internal/utils"
)

const otpTTL = 10 * time.Minute

// IssueResult distinguishes "no matching registration" from a hard
// failure: Found=false is a soft outcome the handler reports with a
// hint to register instead.
type IssueResult struct {
	Found     bool
	ExpiresAt time.Time
}

// MemberSummary is returned alongside verification for the
// membership_check action only.
type MemberSummary struct {
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	VerificationStatus string  `json:"verification_status"`
	MembershipNumber   *string `json:"membership_number,omitempty"`
}

type VerifyResult struct {
	Verified bool
	Member   *MemberSummary
}

type OTPService interface {
	Issue(email, idNumber, action string) (*IssueResult, error)
	Verify(email, code, action string) (*VerifyResult, error)
}

type otpService struct {
	regs   repositories.RegistrationRepository
	otps   repositories.OTPRepository
	emails EmailService

	// Now is swappable in tests to cross the expiry boundary.
	Now func() time.Time
}

func NewOTPService(regs repositories.RegistrationRepository, otps repositories.OTPRepository, emails EmailService) OTPService {
	return &otpService{regs: regs, otps: otps, emails: emails, Now: time.Now}
}

// Issue verifies a registration matching both email and id_number
// exists, replaces any live code for (email, action) and dispatches the
// new code by email. Email delivery is best-effort: the code is issued
// and checkable even when the send fails.
func (s *otpService) Issue(email, idNumber, action string) (*IssueResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	idNumber = strings.TrimSpace(idNumber)
	if email == "" || idNumber == "" {
		return nil, fmt.Errorf("%w: email and id_number are required", ErrValidation)
	}
	if !models.IsValidActionType(action) {
		return nil, fmt.Errorf("%w: unknown action type %q", ErrValidation, action)
	}

	reg, err := s.regs.GetByEmailAndIDNumber(email, idNumber)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		log.Printf("[otp][issue] no registration for email=%q action=%s", email, action)
		return &IssueResult{Found: false}, nil
	}

	code, err := utils.NewOTPCode()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}
	expiresAt := s.Now().Add(otpTTL)
	if err := s.otps.Issue(email, code, action, expiresAt); err != nil {
		return nil, err
	}

	if err := s.emails.SendOTPEmail(email, code, action); err != nil {
		log.Printf("[otp][issue] email dispatch failed for %s: %v", email, err)
	}
	return &IssueResult{Found: true, ExpiresAt: expiresAt}, nil
}

// Verify consumes the code one-shot. For membership_check it also
// returns the member's status and membership number.
func (s *otpService) Verify(email, code, action string) (*VerifyResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return nil, fmt.Errorf("%w: email and code are required", ErrValidation)
	}
	if !models.IsValidActionType(action) {
		return nil, fmt.Errorf("%w: unknown action type %q", ErrValidation, action)
	}

	otp, err := s.otps.Consume(email, code, action, s.Now())
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return &VerifyResult{Verified: false}, nil
	}

	if action != models.ActionMembershipCheck {
		return &VerifyResult{Verified: true}, nil
	}

	reg, err := s.regs.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		// Registration removed between issuance and verification.
		log.Printf("[otp][verify] registration gone for email=%q", email)
		return &VerifyResult{Verified: false}, nil
	}
	return &VerifyResult{
		Verified: true,
		Member: &MemberSummary{
			FirstName:          reg.FirstName,
			LastName:           reg.LastName,
			VerificationStatus: reg.VerificationStatus,
			MembershipNumber:   reg.MembershipNumber,
		},
	}, nil
}
