package core

import (
	"context"
	"fmt"
	"time"
)

// EphemeralStore is a minimal key-value interface used for short-lived OTP
// state. Implementations must honor TTL on Set and treat missing keys as
// (found=false, err=nil).
//
// GetDel atomically reads and removes a key so a pending code cannot pass
// verification twice under concurrent verify calls.
type EphemeralStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	GetDel(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

func (s *Service) useEphemeralStore() bool {
	return s != nil && s.otp != nil
}

func (s *Service) ephemSetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !s.useEphemeralStore() {
		return fmt.Errorf("ephemeral store unavailable")
	}
	b, err := marshalJSON(value)
	if err != nil {
		return err
	}
	return s.otp.Set(ctx, key, b, ttl)
}

func (s *Service) ephemGetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !s.useEphemeralStore() {
		return false, fmt.Errorf("ephemeral store unavailable")
	}
	b, ok, err := s.otp.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	return true, unmarshalJSON(b, out)
}

func (s *Service) ephemTakeJSON(ctx context.Context, key string, out any) (bool, error) {
	if !s.useEphemeralStore() {
		return false, fmt.Errorf("ephemeral store unavailable")
	}
	b, ok, err := s.otp.GetDel(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	return true, unmarshalJSON(b, out)
}
