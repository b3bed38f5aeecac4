package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pspk/internal/services"
)

type DataRequestHandler struct {
	requests services.DataRequestService
}

func NewDataRequestHandler(requests services.DataRequestService) *DataRequestHandler {
	return &DataRequestHandler{requests: requests}
}

type dataRequestRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	RequestType string  `json:"request_type" binding:"required"`
	Reason      *string `json:"reason"`
	Details     *string `json:"details"`
}

// Submit assumes the caller already verified an OTP for the matching
// action_type (correction or deletion).
func (h *DataRequestHandler) Submit(c *gin.Context) {
	var req dataRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dr, err := h.requests.Submit(req.Email, req.RequestType, req.Reason, req.Details)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Your request has been received and will be processed within 14 days.",
			"request_id": dr.ID,
		})
	case errors.Is(err, services.ErrNotFound):
		respondSoftFail(c, "No registration matches that email address.")
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[data-request] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
