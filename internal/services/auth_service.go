package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pspk/internal/middleware"
	"pspk/internal/repositories"
)

// AdminAuthService issues the signed session tokens gating the admin
// dashboard. The signing key lives in config and is passed in here and
// to the middleware, never held as package state.
type AdminAuthService interface {
	Login(email, password string) (string, error)
}

type adminAuthService struct {
	admins     repositories.AdminUserRepository
	jwtSecret  []byte
	sessionTTL time.Duration
}

func NewAdminAuthService(admins repositories.AdminUserRepository, jwtSecret string, sessionTTL time.Duration) AdminAuthService {
	return &adminAuthService{
		admins:     admins,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
	}
}

func (s *adminAuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	admin, err := s.admins.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if admin == nil {
		log.Printf("[admin][login] unknown email=%q", email)
		return "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Printf("[admin][login] bad password for adminID=%d", admin.ID)
		return "", ErrUnauthorized
	}

	claims := &middleware.Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	log.Printf("[admin][login] success adminID=%d", admin.ID)
	return signed, nil
}
