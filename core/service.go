package core

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

// Options configures token issuance and the OTP/offer time windows.
// Zero durations fall back to the documented defaults.
type Options struct {
	JWTSecret []byte
	// BaseURL is used to build client-facing links (price offer URLs).
	BaseURL string

	SessionTokenDuration time.Duration // default 24h
	OTPCodeTTL           time.Duration // default 5m
	OTPCooldown          time.Duration // default 5m
	OfferTTL             time.Duration // default 24h
}

// SMSSender dispatches outbound text messages. Implementations own their
// transport-level retries and timeouts; the service applies none.
type SMSSender interface {
	Send(ctx context.Context, toE164, body string) error
}

// AdminNotifier pushes an event to connected admin sessions. Best-effort:
// errors are not expected and not returned.
type AdminNotifier interface {
	NotifyAdmins(eventType string, data any)
}

// ContactStore persists contact-form submissions.
type ContactStore interface {
	Create(ctx context.Context, c *Contact) error
	List(ctx context.Context) ([]Contact, error)
	Delete(ctx context.Context, id string) error
}

// AdminStore is the admin account directory.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Create(ctx context.Context, a *Admin) error
	Delete(ctx context.Context, id string) error
}

// VerifiedUserStore persists phone numbers that passed OTP verification.
type VerifiedUserStore interface {
	Upsert(ctx context.Context, u *VerifiedUser) error
}

// PriceOfferStore persists quotes. MarkUsed is a partial update touching
// only the usage columns.
type PriceOfferStore interface {
	Create(ctx context.Context, o *PriceOffer) error
	GetByToken(ctx context.Context, token string) (*PriceOffer, error)
	MarkUsed(ctx context.Context, token string, usedAt time.Time) error
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

// Service is the application core consumed by the HTTP adapters.
type Service struct {
	opts     Options
	phones   PhoneNormalizer
	otp      EphemeralStore
	sms      SMSSender
	notifier AdminNotifier

	contacts ContactStore
	admins   AdminStore
	verified VerifiedUserStore
	offers   PriceOfferStore

	now func() time.Time
}

func NewService(opts Options) *Service {
	if opts.SessionTokenDuration <= 0 {
		opts.SessionTokenDuration = 24 * time.Hour
	}
	if opts.OTPCodeTTL <= 0 {
		opts.OTPCodeTTL = 5 * time.Minute
	}
	if opts.OTPCooldown <= 0 {
		opts.OTPCooldown = 5 * time.Minute
	}
	if opts.OfferTTL <= 0 {
		opts.OfferTTL = 24 * time.Hour
	}
	return &Service{opts: opts, phones: RomanianPlan{}, now: time.Now}
}

// WithPhoneNormalizer swaps the numbering-plan policy.
func (s *Service) WithPhoneNormalizer(p PhoneNormalizer) *Service { s.phones = p; return s }

// WithEphemeralStore sets the KV backing the OTP and cooldown registries.
func (s *Service) WithEphemeralStore(store EphemeralStore) *Service { s.otp = store; return s }

// WithSMSSender sets the SMS dispatcher dependency.
func (s *Service) WithSMSSender(sender SMSSender) *Service { s.sms = sender; return s }

// WithNotifier sets the live admin notification sink.
func (s *Service) WithNotifier(n AdminNotifier) *Service { s.notifier = n; return s }

func (s *Service) WithContactStore(st ContactStore) *Service { s.contacts = st; return s }

func (s *Service) WithAdminStore(st AdminStore) *Service { s.admins = st; return s }

func (s *Service) WithVerifiedUserStore(st VerifiedUserStore) *Service { s.verified = st; return s }

func (s *Service) WithPriceOfferStore(st PriceOfferStore) *Service { s.offers = st; return s }

// WithClock overrides the time source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service { s.now = now; return s }

func (s *Service) HasSMSSender() bool { return s.sms != nil }

func (s *Service) notifyAdmins(eventType string, data any) {
	if s.notifier != nil {
		s.notifier.NotifyAdmins(eventType, data)
	}
}

// IssueSessionToken signs an HS256 session token for a verified subject.
// Returns the token and its lifetime in whole seconds.
func (s *Service) IssueSessionToken(subject, role string) (string, int64, error) {
	now := s.now()
	ttl := s.opts.SessionTokenDuration
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opts.JWTSecret)
	if err != nil {
		return "", 0, err
	}
	return tok, int64(ttl / time.Second), nil
}

// Keyfunc validates incoming HS256 tokens against the shared secret.
func (s *Service) Keyfunc() func(token *jwt.Token) (any, error) {
	return func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.opts.JWTSecret, nil
	}
}

func randInt(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// a time-derived value rather than panicking mid-request.
		return int(time.Now().UnixNano() % int64(max))
	}
	return int(n.Int64())
}

func marshalJSON(v any) ([]byte, error)   { return json.Marshal(v) }
func unmarshalJSON(b []byte, v any) error { return json.Unmarshal(b, v) }

func logStoreFailure(op string, err error) {
	log.WithError(err).WithField("op", op).Error("store write failed")
}
