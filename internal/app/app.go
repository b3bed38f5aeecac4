package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"pspk/internal/config"
	"pspk/internal/handlers"
	"pspk/internal/mailer"
	"pspk/internal/pdf"
	"pspk/internal/repositories"
	"pspk/internal/routes"
	"pspk/internal/services"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("database unreachable: ", err)
	}

	// === Repos ===
	registrationRepo := repositories.NewRegistrationRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	dataRequestRepo := repositories.NewDataRequestRepository(db)
	resignationLogRepo := repositories.NewResignationLogRepository(db)
	featuredPostRepo := repositories.NewFeaturedPostRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	volunteerRepo := repositories.NewVolunteerRepository(db)
	adminUserRepo := repositories.NewAdminUserRepository(db)

	// === Services ===
	emailService := services.NewEmailService(mailer.New(cfg.Email), cfg.Email.AdminAddress)
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID)

	registrationService := services.NewRegistrationService(registrationRepo, emailService, telegramService)
	otpService := services.NewOTPService(registrationRepo, otpRepo, emailService)
	resignationService := services.NewResignationService(registrationRepo, resignationLogRepo, emailService)
	dataRequestService := services.NewDataRequestService(registrationRepo, dataRequestRepo, emailService, telegramService)
	verificationService := services.NewVerificationService(registrationRepo, emailService)
	featuredPostService := services.NewFeaturedPostService(featuredPostRepo)
	contactService := services.NewContactService(contactRepo, emailService)
	volunteerService := services.NewVolunteerService(volunteerRepo, emailService)
	exportService := services.NewExportService(registrationRepo)
	adminAuthService := services.NewAdminAuthService(
		adminUserRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.SessionHours)*time.Hour,
	)

	// === Handlers ===
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	otpHandler := handlers.NewOTPHandler(otpService)
	membershipHandler := handlers.NewMembershipHandler(resignationService, registrationService)
	dataRequestHandler := handlers.NewDataRequestHandler(dataRequestService)
	contactHandler := handlers.NewContactHandler(contactService)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService)
	postHandler := handlers.NewPostHandler(featuredPostService)
	adminHandler := handlers.NewAdminHandler(
		adminAuthService,
		registrationService,
		verificationService,
		dataRequestService,
		exportService,
		pdf.NewCertificateGenerator(),
	)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	routes.SetupRoutes(
		router,
		cfg.Auth.JWTSecret,
		registrationHandler,
		otpHandler,
		membershipHandler,
		dataRequestHandler,
		contactHandler,
		volunteerHandler,
		postHandler,
		adminHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
