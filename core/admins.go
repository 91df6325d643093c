package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin checks credentials against the directory and, when the account
// is an admin, returns the account plus a signed session token.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*Admin, string, error) {
	if s.admins == nil {
		return nil, "", fmt.Errorf("admin store unavailable")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if admin.Role != "admin" {
		return nil, "", ErrNotAdmin
	}

	token, _, err := s.IssueSessionToken(admin.ID, admin.Role)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ListAdmins returns all admin accounts. Password hashes stay internal via
// the entity's JSON mapping.
func (s *Service) ListAdmins(ctx context.Context) ([]Admin, error) {
	if s.admins == nil {
		return nil, fmt.Errorf("admin store unavailable")
	}
	return s.admins.List(ctx)
}

// CreateAdmin provisions a new admin account. The email must be unused.
func (s *Service) CreateAdmin(ctx context.Context, name, email, password string) (*Admin, error) {
	if s.admins == nil {
		return nil, fmt.Errorf("admin store unavailable")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &Admin{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		Role:         "admin",
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.notifyAdmins("new-admin-user", admin)
	return admin, nil
}

// DeleteAdmin removes an admin account and notifies connected admins.
func (s *Service) DeleteAdmin(ctx context.Context, id string) error {
	if s.admins == nil {
		return fmt.Errorf("admin store unavailable")
	}
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}
	if err := s.admins.Delete(ctx, id); err != nil {
		return err
	}
	s.notifyAdmins("admin-user-deleted", map[string]string{"id": id})
	return nil
}
