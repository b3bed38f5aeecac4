package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pspk/internal/models"
)

func newVerificationTestService() (*verificationService, *fakeRegistrationRepo, *fakeEmailService) {
	regs := newFakeRegistrationRepo()
	emails := &fakeEmailService{}
	svc := &verificationService{
		regs:   regs,
		emails: emails,
		Now:    func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) },
	}
	return svc, regs, emails
}

func TestApproveAssignsSequentialMembershipNumbers(t *testing.T) {
	svc, regs, emails := newVerificationTestService()
	seedRegistration(regs, "first@x.com", "11111111")
	seedRegistration(regs, "second@x.com", "22222222")

	res, err := svc.VerifyMember("reg-11111111", VerifyActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, res.Status)
	assert.Equal(t, "PSP-K-2025-00001", res.MembershipNumber)

	res, err = svc.VerifyMember("reg-22222222", VerifyActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, "PSP-K-2025-00002", res.MembershipNumber)

	assert.Contains(t, emails.sent, "approval:first@x.com:PSP-K-2025-00001")
	assert.Contains(t, emails.sent, "approval:second@x.com:PSP-K-2025-00002")
}

func TestRejectRequiresReason(t *testing.T) {
	svc, regs, _ := newVerificationTestService()
	seedRegistration(regs, "a@x.com", "12345678")

	_, err := svc.VerifyMember("reg-12345678", VerifyActionReject, "  ")
	require.ErrorIs(t, err, ErrValidation)

	res, err := svc.VerifyMember("reg-12345678", VerifyActionReject, "ID number could not be validated")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, res.Status)

	stored, err := regs.GetByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, "ID number could not be validated", *stored.RejectionReason)
}

func TestVerifyMemberUnknownID(t *testing.T) {
	svc, _, _ := newVerificationTestService()
	_, err := svc.VerifyMember("missing", VerifyActionApprove, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyMemberRejectsUnknownAction(t *testing.T) {
	svc, regs, _ := newVerificationTestService()
	seedRegistration(regs, "a@x.com", "12345678")
	_, err := svc.VerifyMember("reg-12345678", "suspend", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestVerifyMemberIsTerminal(t *testing.T) {
	svc, regs, _ := newVerificationTestService()
	seedRegistration(regs, "a@x.com", "12345678")

	_, err := svc.VerifyMember("reg-12345678", VerifyActionApprove, "")
	require.NoError(t, err)

	// No second pass: approving or rejecting a processed member fails.
	_, err = svc.VerifyMember("reg-12345678", VerifyActionApprove, "")
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.VerifyMember("reg-12345678", VerifyActionReject, "changed my mind")
	require.ErrorIs(t, err, ErrValidation)
}

func TestApproveSucceedsWhenEmailFails(t *testing.T) {
	svc, regs, emails := newVerificationTestService()
	seedRegistration(regs, "a@x.com", "12345678")
	emails.err = errors.New("provider down")

	res, err := svc.VerifyMember("reg-12345678", VerifyActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, "PSP-K-2025-00001", res.MembershipNumber)
}
