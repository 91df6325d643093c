package core

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// CreateOffer recomputes the quote from the tier selectors and persists a
// tokenized offer. Client-sent amounts are never trusted.
func (s *Service) CreateOffer(ctx context.Context, email string, videosPerWeek, postsPerWeek int, includeAdManagement bool) (*PriceOffer, string, error) {
	if s.offers == nil {
		return nil, "", fmt.Errorf("price offer store unavailable")
	}

	now := s.now()
	offer := &PriceOffer{
		Token:               newOfferToken(),
		Email:               strings.TrimSpace(email),
		VideosPerWeek:       videosPerWeek,
		PostsPerWeek:        postsPerWeek,
		IncludeAdManagement: includeAdManagement,
		Price:               CalculatePrice(videosPerWeek, postsPerWeek, includeAdManagement),
		CreatedAt:           now,
		ExpiresAt:           now.Add(s.opts.OfferTTL),
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, "", fmt.Errorf("persist offer: %w", err)
	}

	url := strings.TrimRight(s.opts.BaseURL, "/") + "/price-offer/" + offer.Token
	return offer, url, nil
}

// FetchOffer loads an offer by token, enforces expiry, and on the first
// successful fetch flips the usage marker. The returned view reports the
// marker as it stood before this fetch; expired rows are left in place.
func (s *Service) FetchOffer(ctx context.Context, token string) (*PriceOfferView, error) {
	if s.offers == nil {
		return nil, fmt.Errorf("price offer store unavailable")
	}

	offer, err := s.offers.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	if s.now().After(offer.ExpiresAt) {
		return nil, ErrOfferExpired
	}

	if !offer.IsUsed {
		if err := s.offers.MarkUsed(ctx, offer.Token, s.now()); err != nil {
			return nil, fmt.Errorf("mark offer used: %w", err)
		}
	}

	return &PriceOfferView{
		Email:               offer.Email,
		VideosPerWeek:       offer.VideosPerWeek,
		PostsPerWeek:        offer.PostsPerWeek,
		IncludeAdManagement: offer.IncludeAdManagement,
		Price:               offer.Price,
		CreatedAt:           offer.CreatedAt,
		ExpiresAt:           offer.ExpiresAt,
		IsUsed:              offer.IsUsed,
	}, nil
}

// PurgeExpiredOffers deletes up to batch offers whose expiry predates the
// retention window. Used by the background retention job, never by request
// handlers.
func (s *Service) PurgeExpiredOffers(ctx context.Context, retentionDays, batch int) (int, error) {
	if s.offers == nil {
		return 0, fmt.Errorf("price offer store unavailable")
	}
	return s.offers.DeleteExpiredBefore(ctx, s.now().AddDate(0, 0, -retentionDays), batch)
}

func newOfferToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base58.Encode(b)
}
