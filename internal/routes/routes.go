package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pspk/internal/handlers"
	"pspk/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret string,
	registrationHandler *handlers.RegistrationHandler,
	otpHandler *handlers.OTPHandler,
	membershipHandler *handlers.MembershipHandler,
	dataRequestHandler *handlers.DataRequestHandler,
	contactHandler *handlers.ContactHandler,
	volunteerHandler *handlers.VolunteerHandler,
	postHandler *handlers.PostHandler,
	adminHandler *handlers.AdminHandler,
) *gin.Engine {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ---- public
	api.POST("/register", registrationHandler.Register)
	api.POST("/otp/request", otpHandler.RequestOTP)
	api.POST("/otp/verify", otpHandler.VerifyOTP)
	api.POST("/membership/status", membershipHandler.CheckStatus)
	api.POST("/membership/resign", membershipHandler.Resign)
	api.POST("/data-requests", dataRequestHandler.Submit)
	api.POST("/contact", contactHandler.Submit)
	api.POST("/volunteer", volunteerHandler.Register)
	api.GET("/posts", postHandler.ListPublished)
	api.POST("/admin/login", adminHandler.Login)

	// ---- admin (session-gated)
	admin := api.Group("/admin", middleware.AdminAuth(jwtSecret))
	{
		admin.GET("/members", adminHandler.ListMembers)
		admin.GET("/members/export", adminHandler.ExportMembersCSV)
		admin.GET("/members/:id", adminHandler.GetMember)
		admin.POST("/members/:id/verify", adminHandler.VerifyMember)
		admin.GET("/members/:id/certificate", adminHandler.MemberCertificate)

		admin.GET("/data-requests", adminHandler.ListDataRequests)

		admin.GET("/posts", postHandler.ListAll)
		admin.POST("/posts", postHandler.Create)
		admin.PUT("/posts/:id", postHandler.Update)
		admin.DELETE("/posts/:id", postHandler.Delete)
	}

	return r
}
