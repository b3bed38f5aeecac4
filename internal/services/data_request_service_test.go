package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pspk/internal/models"
)

func newDataRequestTestService() (*dataRequestService, *fakeRegistrationRepo, *fakeDataRequestRepo, *fakeEmailService) {
	regs := newFakeRegistrationRepo()
	requests := &fakeDataRequestRepo{}
	emails := &fakeEmailService{}
	svc := &dataRequestService{regs: regs, requests: requests, emails: emails, telegram: nil}
	return svc, regs, requests, emails
}

func TestSubmitDataRequestWithoutDetails(t *testing.T) {
	svc, regs, requests, emails := newDataRequestTestService()
	seedRegistration(regs, "a@x.com", "12345678")

	// details is optional at the API layer even though the web form
	// requires it.
	dr, err := svc.Submit("a@x.com", models.RequestCorrection, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dr.ID)
	assert.Equal(t, "pending", dr.Status)
	assert.Nil(t, dr.Details)
	assert.Nil(t, dr.Reason)

	require.Len(t, requests.created, 1)
	assert.Contains(t, emails.sent, "data-request:a@x.com:correction")
	assert.Contains(t, emails.sent, "admin-alert:a@x.com")
}

func TestSubmitDataRequestUnknownEmail(t *testing.T) {
	svc, _, requests, _ := newDataRequestTestService()
	_, err := svc.Submit("nobody@x.com", models.RequestDeletion, nil, nil)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, requests.created)
}

func TestSubmitDataRequestUnknownType(t *testing.T) {
	svc, regs, _, _ := newDataRequestTestService()
	seedRegistration(regs, "a@x.com", "12345678")
	_, err := svc.Submit("a@x.com", "portability", nil, nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestSubmitDataRequestSucceedsWhenEmailsFail(t *testing.T) {
	svc, regs, requests, emails := newDataRequestTestService()
	seedRegistration(regs, "a@x.com", "12345678")
	emails.err = errors.New("provider down")

	details := "my ward is listed wrongly"
	dr, err := svc.Submit("a@x.com", models.RequestCorrection, nil, &details)
	require.NoError(t, err)
	require.NotNil(t, dr.Details)
	assert.Equal(t, details, *dr.Details)
	assert.Len(t, requests.created, 1)
}
