package services

import (
	"fmt"
	"log"
	"strings"

	"pspk/internal/models"
	"pspk/internal/repositories"
)

type ContactService interface {
	Submit(c *models.Contact) error
}

type contactService struct {
	contacts repositories.ContactRepository
	emails   EmailService
}

func NewContactService(contacts repositories.ContactRepository, emails EmailService) ContactService {
	return &contactService{contacts: contacts, emails: emails}
}

// Submit stores the message and relays it to the configured admin
// address. The stored row is the source of truth; the relay is
// best-effort.
func (s *contactService) Submit(c *models.Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Message = strings.TrimSpace(c.Message)
	if c.Name == "" || c.Email == "" || c.Message == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrValidation)
	}

	if err := s.contacts.Create(c); err != nil {
		return err
	}
	if err := s.emails.SendContactRelay(c); err != nil {
		log.Printf("[contact] relay email failed: %v", err)
	}
	return nil
}
