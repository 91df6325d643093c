package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SubmitContact validates and persists a contact-form submission and pushes
// a live notification to connected admins.
func (s *Service) SubmitContact(ctx context.Context, c Contact) (*Contact, error) {
	if s.contacts == nil {
		return nil, fmt.Errorf("contact store unavailable")
	}

	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Service = strings.TrimSpace(c.Service)
	c.Budget = strings.TrimSpace(c.Budget)
	c.Description = strings.TrimSpace(c.Description)

	c.ID = uuid.NewString()
	c.Status = "new"
	c.CreatedAt = s.now()
	if err := s.contacts.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("persist contact: %w", err)
	}

	s.notifyAdmins("new-contact", c)
	return &c, nil
}

// ListContacts returns all submissions newest-first.
func (s *Service) ListContacts(ctx context.Context) ([]Contact, error) {
	if s.contacts == nil {
		return nil, fmt.Errorf("contact store unavailable")
	}
	return s.contacts.List(ctx)
}

// DeleteContact removes a submission and notifies connected admins.
func (s *Service) DeleteContact(ctx context.Context, id string) error {
	if s.contacts == nil {
		return fmt.Errorf("contact store unavailable")
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return err
	}
	s.notifyAdmins("contact-deleted", map[string]string{"id": id})
	return nil
}
