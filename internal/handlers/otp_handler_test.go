package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pspk/internal/services"
)

type stubOTPService struct {
	issueRes  *services.IssueResult
	issueErr  error
	verifyRes *services.VerifyResult
	verifyErr error
}

func (s *stubOTPService) Issue(email, idNumber, action string) (*services.IssueResult, error) {
	return s.issueRes, s.issueErr
}

func (s *stubOTPService) Verify(email, code, action string) (*services.VerifyResult, error) {
	return s.verifyRes, s.verifyErr
}

func newOTPRouter(svc services.OTPService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOTPHandler(svc)
	r.POST("/api/otp/request", h.RequestOTP)
	r.POST("/api/otp/verify", h.VerifyOTP)
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestOTPRejectsMalformedBody(t *testing.T) {
	router := newOTPRouter(&stubOTPService{})

	w := postJSON(router, "/api/otp/request", `{"email":"not-an-email","id_number":"1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/api/otp/request", `{"id_number":"1","action_type":"resignation"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestOTPSoftFailsOnUnknownRegistration(t *testing.T) {
	router := newOTPRouter(&stubOTPService{issueRes: &services.IssueResult{Found: false}})

	w := postJSON(router, "/api/otp/request",
		`{"email":"a@x.com","id_number":"12345678","action_type":"resignation"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "register first")
}

func TestRequestOTPSuccess(t *testing.T) {
	expires := time.Date(2025, 3, 10, 12, 10, 0, 0, time.UTC)
	router := newOTPRouter(&stubOTPService{issueRes: &services.IssueResult{Found: true, ExpiresAt: expires}})

	w := postJSON(router, "/api/otp/request",
		`{"email":"a@x.com","id_number":"12345678","action_type":"membership_check"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "expires_at")
}

func TestRequestOTPUnknownActionIsBadRequest(t *testing.T) {
	router := newOTPRouter(&stubOTPService{
		issueErr: errors.Join(services.ErrValidation, errors.New("unknown action")),
	})

	w := postJSON(router, "/api/otp/request",
		`{"email":"a@x.com","id_number":"12345678","action_type":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyOTPSoftFailsOnBadCode(t *testing.T) {
	router := newOTPRouter(&stubOTPService{verifyRes: &services.VerifyResult{Verified: false}})

	w := postJSON(router, "/api/otp/verify",
		`{"email":"a@x.com","code":"111111","action_type":"resignation"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestVerifyOTPMembershipCheckReturnsMember(t *testing.T) {
	number := "PSP-K-2025-00001"
	router := newOTPRouter(&stubOTPService{verifyRes: &services.VerifyResult{
		Verified: true,
		Member: &services.MemberSummary{
			FirstName:          "Wanjiku",
			LastName:           "Kamau",
			VerificationStatus: "approved",
			MembershipNumber:   &number,
		},
	}})

	w := postJSON(router, "/api/otp/verify",
		`{"email":"a@x.com","code":"111111","action_type":"membership_check"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":true`)
	assert.Contains(t, w.Body.String(), "PSP-K-2025-00001")
	assert.Contains(t, w.Body.String(), "Wanjiku")
}

func TestVerifyOTPOmitsMemberForOtherActions(t *testing.T) {
	router := newOTPRouter(&stubOTPService{verifyRes: &services.VerifyResult{Verified: true}})

	w := postJSON(router, "/api/otp/verify",
		`{"email":"a@x.com","code":"111111","action_type":"deletion"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "member")
}
