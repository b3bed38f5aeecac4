package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pspk/internal/models"
	"pspk/internal/services"
)

type RegistrationHandler struct {
	registrations services.RegistrationService
}

func NewRegistrationHandler(registrations services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

type registerRequest struct {
	FirstName             string   `json:"first_name" binding:"required"`
	LastName              string   `json:"last_name" binding:"required"`
	Email                 string   `json:"email" binding:"required,email"`
	IDNumber              string   `json:"id_number" binding:"required"`
	Phone                 string   `json:"phone"`
	DateOfBirth           string   `json:"date_of_birth" binding:"required"`
	Gender                string   `json:"gender" binding:"required"`
	County                string   `json:"county" binding:"required"`
	Constituency          string   `json:"constituency" binding:"required"`
	Ward                  string   `json:"ward" binding:"required"`
	DisabilityStatus      string   `json:"disability_status"`
	SpecialInterestGroups []string `json:"special_interest_groups"`
	ConsentDataProcessing bool     `json:"consent_data_processing"`
	ConsentCommunications bool     `json:"consent_communications"`
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}

	reg := &models.Registration{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		IDNumber:              req.IDNumber,
		Phone:                 req.Phone,
		DateOfBirth:           dob,
		Gender:                req.Gender,
		County:                req.County,
		Constituency:          req.Constituency,
		Ward:                  req.Ward,
		DisabilityStatus:      req.DisabilityStatus,
		SpecialInterestGroups: req.SpecialInterestGroups,
		ConsentDataProcessing: req.ConsentDataProcessing,
		ConsentCommunications: req.ConsentCommunications,
	}

	err = h.registrations.Register(reg)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Registration received. Your membership is pending verification.",
			"id":      reg.ID,
		})
	case errors.Is(err, services.ErrAlreadyRegistered):
		respondSoftFail(c, "A registration with that email or ID number already exists.")
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[register] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
