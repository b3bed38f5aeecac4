package services

import (
	"fmt"
	"log"
	"strings"

	"pspk/internal/models"
	"pspk/internal/repositories"
)

type VolunteerService interface {
	Register(v *models.Volunteer) error
}

type volunteerService struct {
	volunteers repositories.VolunteerRepository
	emails     EmailService
}

func NewVolunteerService(volunteers repositories.VolunteerRepository, emails EmailService) VolunteerService {
	return &volunteerService{volunteers: volunteers, emails: emails}
}

func (s *volunteerService) Register(v *models.Volunteer) error {
	v.Name = strings.TrimSpace(v.Name)
	v.Email = strings.ToLower(strings.TrimSpace(v.Email))
	if v.Name == "" || v.Email == "" {
		return fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	if err := s.volunteers.Create(v); err != nil {
		return err
	}
	if err := s.emails.SendVolunteerAck(v.Email, v.Name); err != nil {
		log.Printf("[volunteer] acknowledgement email failed for %s: %v", v.Email, err)
	}
	return nil
}
