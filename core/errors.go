package core

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPhone       = errors.New("invalid_phone")
	ErrNoPendingCode      = errors.New("no_pending_code")
	ErrCodeExpired        = errors.New("code_expired")
	ErrInvalidCodeFormat  = errors.New("invalid_code_format")
	ErrCodeMismatch       = errors.New("code_mismatch")
	ErrOfferNotFound      = errors.New("offer_not_found")
	ErrOfferExpired       = errors.New("offer_expired")
	ErrContactNotFound    = errors.New("contact_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNotAdmin           = errors.New("not_admin")
	ErrAdminExists        = errors.New("admin_exists")
	ErrAdminNotFound      = errors.New("admin_not_found")
	ErrSMSUnavailable     = errors.New("sms_unavailable")
)

// CooldownError is returned by SendOTP while the phone is still inside the
// re-request window recorded by the last successful verification.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown_active: retry in %s", e.Remaining)
}

// RetryMinutes reports the remaining wait rounded up to whole minutes,
// never less than 1 while the cooldown is active.
func (e *CooldownError) RetryMinutes() int {
	secs := int(e.Remaining / time.Second)
	if e.Remaining%time.Second > 0 {
		secs++
	}
	mins := secs / 60
	if secs%60 > 0 {
		mins++
	}
	if mins < 1 {
		mins = 1
	}
	return mins
}
