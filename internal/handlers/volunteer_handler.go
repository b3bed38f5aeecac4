package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pspk/internal/models"
	"pspk/internal/services"
)

type VolunteerHandler struct {
	volunteers services.VolunteerService
}

func NewVolunteerHandler(volunteers services.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{volunteers: volunteers}
}

type volunteerRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone"`
	County          string   `json:"county"`
	AreasOfInterest []string `json:"areas_of_interest"`
	Availability    string   `json:"availability"`
}

func (h *VolunteerHandler) Register(c *gin.Context) {
	var req volunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v := &models.Volunteer{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		County:          req.County,
		AreasOfInterest: req.AreasOfInterest,
		Availability:    req.Availability,
	}
	if err := h.volunteers.Register(v); err != nil {
		respondServiceError(c, err, "volunteer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for signing up to volunteer."})
}
