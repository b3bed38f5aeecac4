package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pspk/internal/models"
	"pspk/internal/services"
)

type ContactHandler struct {
	contacts services.ContactService
}

func NewContactHandler(contacts services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contacts.Submit(contact); err != nil {
		respondServiceError(c, err, "contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for your message. We will get back to you."})
}
