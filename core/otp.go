package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	keyPendingOTP = "otp:pending:"
	keyCooldown   = "otp:cooldown:"
)

type pendingOTP struct {
	Code      string          `json:"code"`
	ExpiresAt time.Time       `json:"expires_at"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type cooldownEntry struct {
	BlockedUntil time.Time `json:"blocked_until"`
}

// SendOTP normalizes the phone, enforces the re-request cooldown, stores a
// fresh 4-digit code (overwriting any prior pending one) and dispatches it
// via SMS. The payload is carried through to verification success.
func (s *Service) SendOTP(ctx context.Context, phone string, payload json.RawMessage) error {
	normalized, err := s.phones.Normalize(phone)
	if err != nil {
		return err
	}

	if remaining, active, err := s.cooldownRemaining(ctx, normalized); err != nil {
		return err
	} else if active {
		return &CooldownError{Remaining: remaining}
	}

	code := fmt.Sprintf("%d", 1000+randInt(9000))
	entry := pendingOTP{
		Code:      code,
		ExpiresAt: s.now().Add(s.opts.OTPCodeTTL),
		Payload:   payload,
	}
	// The KV TTL runs past ExpiresAt so a late verify still finds the entry
	// and can report it as expired rather than missing.
	if err := s.ephemSetJSON(ctx, keyPendingOTP+normalized, entry, 2*s.opts.OTPCodeTTL); err != nil {
		return err
	}

	if s.sms == nil {
		return ErrSMSUnavailable
	}
	body := fmt.Sprintf("Codul tau de verificare este: %s", code)
	if err := s.sms.Send(ctx, normalized, body); err != nil {
		return fmt.Errorf("sms dispatch: %w", err)
	}
	return nil
}

// VerifyOTP checks a submitted code against the pending entry. Success
// consumes the entry, starts the cooldown window, persists the verified
// user best-effort, and returns the payload attached at issuance.
func (s *Service) VerifyOTP(ctx context.Context, phone, submitted string) (json.RawMessage, error) {
	normalized, err := s.phones.Normalize(phone)
	if err != nil {
		return nil, err
	}
	key := keyPendingOTP + normalized

	// Take the entry atomically so the same code cannot verify twice; every
	// check runs against the taken value, and failed guesses restore it so
	// they do not burn the pending code or a concurrently reissued one.
	var entry pendingOTP
	ok, err := s.ephemTakeJSON(ctx, key, &entry)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPendingCode
	}
	if s.now().After(entry.ExpiresAt) {
		return nil, ErrCodeExpired
	}

	submitted = digitsOnly(submitted)
	if len(entry.Code) != 4 || len(submitted) != 4 {
		s.restorePending(ctx, key, entry)
		return nil, ErrInvalidCodeFormat
	}
	if entry.Code != submitted {
		s.restorePending(ctx, key, entry)
		return nil, ErrCodeMismatch
	}

	now := s.now()
	cooldown := cooldownEntry{BlockedUntil: now.Add(s.opts.OTPCooldown)}
	if err := s.ephemSetJSON(ctx, keyCooldown+normalized, cooldown, s.opts.OTPCooldown); err != nil {
		logStoreFailure("record_cooldown", err)
	}

	// Verification already succeeded: the verified-user write is
	// fire-and-forget, failures go to the log only.
	if s.verified != nil {
		u := &VerifiedUser{
			ID:         uuid.NewString(),
			Phone:      normalized,
			Payload:    entry.Payload,
			VerifiedAt: now,
		}
		if err := s.verified.Upsert(ctx, u); err != nil {
			log.WithError(err).WithField("phone", normalized).Error("verified user persistence failed")
		}
	}

	return entry.Payload, nil
}

// restorePending puts a taken entry back after a failed check, keeping its
// original expiry and the post-expiry grace window.
func (s *Service) restorePending(ctx context.Context, key string, entry pendingOTP) {
	ttl := entry.ExpiresAt.Add(s.opts.OTPCodeTTL).Sub(s.now())
	if ttl <= 0 {
		return
	}
	if err := s.ephemSetJSON(ctx, key, entry, ttl); err != nil {
		logStoreFailure("restore_pending_otp", err)
	}
}

func (s *Service) cooldownRemaining(ctx context.Context, normalized string) (time.Duration, bool, error) {
	var entry cooldownEntry
	ok, err := s.ephemGetJSON(ctx, keyCooldown+normalized, &entry)
	if err != nil || !ok {
		return 0, false, err
	}
	remaining := entry.BlockedUntil.Sub(s.now())
	if remaining <= 0 {
		return 0, false, nil
	}
	return remaining, true, nil
}

func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
