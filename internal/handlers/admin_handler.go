package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pspk/internal/middleware"
	"pspk/internal/models"
	"pspk/internal/pdf"
	"pspk/internal/services"
)

type AdminHandler struct {
	auth          services.AdminAuthService
	registrations services.RegistrationService
	verification  services.VerificationService
	requests      services.DataRequestService
	export        services.ExportService
	certificates  pdf.Generator
}

func NewAdminHandler(
	auth services.AdminAuthService,
	registrations services.RegistrationService,
	verification services.VerificationService,
	requests services.DataRequestService,
	export services.ExportService,
	certificates pdf.Generator,
) *AdminHandler {
	return &AdminHandler{
		auth:          auth,
		registrations: registrations,
		verification:  verification,
		requests:      requests,
		export:        export,
		certificates:  certificates,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "admin-login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// ListMembers is the read-only registrations view of the dashboard.
func (h *AdminHandler) ListMembers(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))

	regs, total, err := h.registrations.List(status, page, size)
	if err != nil {
		respondServiceError(c, err, "admin-members")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"members": regs,
		"total":   total,
		"page":    page,
		"size":    size,
	})
}

func (h *AdminHandler) GetMember(c *gin.Context) {
	reg, err := h.registrations.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "admin-members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "member": reg})
}

type verifyMemberRequest struct {
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason"`
}

func (h *AdminHandler) VerifyMember(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	var req verifyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.verification.VerifyMember(c.Param("id"), req.Action, req.Reason)
	if err != nil {
		respondServiceError(c, err, "admin-verify")
		return
	}
	log.Printf("[admin-verify] adminID=%d member=%s action=%s", session.AdminID, result.MemberID, req.Action)
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

func (h *AdminHandler) ExportMembersCSV(c *gin.Context) {
	filename := fmt.Sprintf("registrations-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.export.WriteRegistrationsCSV(c.Writer); err != nil {
		// Headers may already be out; log and abort the stream.
		log.Printf("[admin-export] csv write failed: %v", err)
		c.Abort()
	}
}

func (h *AdminHandler) MemberCertificate(c *gin.Context) {
	reg, err := h.registrations.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "admin-certificate")
		return
	}
	if reg.VerificationStatus != models.StatusApproved || reg.MembershipNumber == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "certificates are only available for approved members"})
		return
	}

	approvedAt := time.Now()
	if reg.VerifiedAt != nil {
		approvedAt = *reg.VerifiedAt
	}
	data, err := h.certificates.GenerateCertificate(pdf.CertificateData{
		FullName:         reg.FullName(),
		MembershipNumber: *reg.MembershipNumber,
		County:           reg.County,
		Constituency:     reg.Constituency,
		ApprovedAt:       approvedAt,
	})
	if err != nil {
		log.Printf("[admin-certificate] generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+*reg.MembershipNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *AdminHandler) ListDataRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}

	requests, err := h.requests.List(size, (page-1)*size)
	if err != nil {
		respondServiceError(c, err, "admin-data-requests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": requests})
}
