package core

import (
	"encoding/json"
	"time"
)

// Contact is a website contact-form submission.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Service     string    `json:"service"`
	Budget      string    `json:"budget"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"timestamp"`
}

// Admin is a console account. PasswordHash never leaves the service layer.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// VerifiedUser records a phone number that passed OTP verification,
// together with whatever payload the client attached at issuance.
type VerifiedUser struct {
	ID         string          `json:"id"`
	Phone      string          `json:"phone"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	VerifiedAt time.Time       `json:"verifiedAt"`
}

// PriceOffer is a persisted, tokenized, time-bounded quote.
type PriceOffer struct {
	Token               string         `json:"token"`
	Email               string         `json:"email"`
	VideosPerWeek       int            `json:"videosPerWeek"`
	PostsPerWeek        int            `json:"postsPerWeek"`
	IncludeAdManagement bool           `json:"includeAdManagement"`
	Price               PriceBreakdown `json:"price"`
	CreatedAt           time.Time      `json:"createdAt"`
	ExpiresAt           time.Time      `json:"expiresAt"`
	IsUsed              bool           `json:"isUsed"`
	UsedAt              *time.Time     `json:"usedAt,omitempty"`
}

// PriceOfferView is the client-facing read model returned by FetchOffer.
// It reports the usage marker as observed before the current fetch so a
// first viewer sees isUsed=false even though the fetch itself flips it.
type PriceOfferView struct {
	Email               string         `json:"email"`
	VideosPerWeek       int            `json:"videosPerWeek"`
	PostsPerWeek        int            `json:"postsPerWeek"`
	IncludeAdManagement bool           `json:"includeAdManagement"`
	Price               PriceBreakdown `json:"price"`
	CreatedAt           time.Time      `json:"createdAt"`
	ExpiresAt           time.Time      `json:"expiresAt"`
	IsUsed              bool           `json:"isUsed"`
}
