package core

import (
	"context"
	"encoding/json"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Provider is the full application surface needed by the HTTP handlers.
// It is implemented by *Service and is the integration boundary handler
// tests stub out.
type Provider interface {
	// OTP workflow
	SendOTP(ctx context.Context, phone string, payload json.RawMessage) error
	VerifyOTP(ctx context.Context, phone, submitted string) (json.RawMessage, error)
	HasSMSSender() bool

	// Price quotes
	CreateOffer(ctx context.Context, email string, videosPerWeek, postsPerWeek int, includeAdManagement bool) (*PriceOffer, string, error)
	FetchOffer(ctx context.Context, token string) (*PriceOfferView, error)

	// Contacts
	SubmitContact(ctx context.Context, c Contact) (*Contact, error)
	ListContacts(ctx context.Context) ([]Contact, error)
	DeleteContact(ctx context.Context, id string) error

	// Admin accounts
	AdminLogin(ctx context.Context, email, password string) (*Admin, string, error)
	ListAdmins(ctx context.Context) ([]Admin, error)
	CreateAdmin(ctx context.Context, name, email, password string) (*Admin, error)
	DeleteAdmin(ctx context.Context, id string) error

	// Tokens
	IssueSessionToken(subject, role string) (string, int64, error)
	Keyfunc() func(token *jwt.Token) (any, error)
}

var _ Provider = (*Service)(nil)
