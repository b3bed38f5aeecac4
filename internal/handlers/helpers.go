package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pspk/internal/services"
)

// respondSoftFail is the "success:false with HTTP 200" envelope used on
// the public self-service paths, so responses never reveal which field
// of a lookup mismatched.
func respondSoftFail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

// respondServiceError maps service sentinels on the admin paths, where
// a plain 404 is fine. Internal detail is logged, never returned.
func respondServiceError(c *gin.Context, err error, logTag string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		log.Printf("[%s] internal error: %v", logTag, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
