package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResignationTestService() (*resignationService, *fakeRegistrationRepo, *fakeResignationLogRepo, *fakeEmailService) {
	regs := newFakeRegistrationRepo()
	logs := &fakeResignationLogRepo{}
	emails := &fakeEmailService{}
	svc := &resignationService{regs: regs, logs: logs, emails: emails}
	return svc, regs, logs, emails
}

func TestResignRemovesRegistrationAndLogs(t *testing.T) {
	svc, regs, logs, emails := newResignationTestService()
	seedRegistration(regs, "a@x.com", "12345678")
	reason := "relocating abroad"

	err := svc.Resign("a@x.com", &reason)
	require.NoError(t, err)

	gone, err := regs.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Nil(t, gone, "registration row must be deleted")

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "a@x.com", logs.entries[0].Email)
	assert.Equal(t, "12345678", logs.entries[0].IDNumber)
	assert.Equal(t, "Wanjiku Kamau", logs.entries[0].FullName)
	require.NotNil(t, logs.entries[0].Reason)
	assert.Equal(t, reason, *logs.entries[0].Reason)

	assert.Contains(t, emails.sent, "resignation:a@x.com")
}

func TestResignUnknownEmail(t *testing.T) {
	svc, _, logs, _ := newResignationTestService()
	err := svc.Resign("nobody@x.com", nil)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, logs.entries)
}

func TestResignDeleteFailureKeepsAuditEntry(t *testing.T) {
	svc, regs, logs, emails := newResignationTestService()
	seedRegistration(regs, "a@x.com", "12345678")
	regs.deleteErr = errors.New("store unavailable")

	err := svc.Resign("a@x.com", nil)
	require.Error(t, err)

	// The audit entry survives the failed delete and the membership is
	// still intact, so the caller can observe and retry.
	assert.Len(t, logs.entries, 1)
	still, gerr := regs.GetByEmail("a@x.com")
	require.NoError(t, gerr)
	assert.NotNil(t, still)
	assert.Empty(t, emails.sent)
}

func TestResignSucceedsWhenEmailFails(t *testing.T) {
	svc, regs, _, emails := newResignationTestService()
	seedRegistration(regs, "a@x.com", "12345678")
	emails.err = errors.New("provider down")

	err := svc.Resign("a@x.com", nil)
	require.NoError(t, err)
}
