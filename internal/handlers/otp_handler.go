package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pspk/internal/services"
)

type OTPHandler struct {
	otp services.OTPService
}

func NewOTPHandler(otp services.OTPService) *OTPHandler {
	return &OTPHandler{otp: otp}
}

type requestOTPRequest struct {
	Email    string `json:"email" binding:"required,email"`
	IDNumber string `json:"id_number" binding:"required"`
	Action   string `json:"action_type" binding:"required"`
}

func (h *OTPHandler) RequestOTP(c *gin.Context) {
	var req requestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.otp.Issue(req.Email, req.IDNumber, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[otp][request] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !res.Found {
		respondSoftFail(c, "No registration matches those details. Please register first.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "A verification code has been sent to your email.",
		"expires_at": res.ExpiresAt,
	})
}

type verifyOTPRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Code   string `json:"code" binding:"required"`
	Action string `json:"action_type" binding:"required"`
}

func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.otp.Verify(req.Email, req.Code, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[otp][verify] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !res.Verified {
		respondSoftFail(c, "The code is invalid or has expired. Please request a new one.")
		return
	}

	body := gin.H{"success": true, "verified": true}
	if res.Member != nil {
		body["member"] = res.Member
	}
	c.JSON(http.StatusOK, body)
}
