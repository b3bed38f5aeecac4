package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pspk/internal/services"
)

type MembershipHandler struct {
	resignations  services.ResignationService
	registrations services.RegistrationService
}

func NewMembershipHandler(resignations services.ResignationService, registrations services.RegistrationService) *MembershipHandler {
	return &MembershipHandler{resignations: resignations, registrations: registrations}
}

type resignRequest struct {
	Email  string  `json:"email" binding:"required,email"`
	Reason *string `json:"reason"`
}

// Resign assumes the caller already verified an OTP for
// action_type=resignation; the client flow enforces that ordering.
func (h *MembershipHandler) Resign(c *gin.Context) {
	var req resignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.resignations.Resign(req.Email, req.Reason)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Your resignation has been processed and your record removed.",
		})
	case errors.Is(err, services.ErrNotFound):
		respondSoftFail(c, "No registration matches that email address.")
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[resign] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

type statusCheckRequest struct {
	IDNumber string `json:"id_number" binding:"required"`
}

func (h *MembershipHandler) CheckStatus(c *gin.Context) {
	var req statusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.registrations.CheckStatus(req.IDNumber)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[membership][status] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !status.Exists {
		respondSoftFail(c, "No membership record matches that ID number.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}
