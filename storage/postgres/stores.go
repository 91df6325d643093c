package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/socialmotion/backend/core"
)

// ContactStore persists contact submissions in Postgres via bun.
type ContactStore struct {
	db *bun.DB
}

func NewContactStore(db *bun.DB) *ContactStore { return &ContactStore{db: db} }

func (s *ContactStore) Create(ctx context.Context, c *core.Contact) error {
	row := &contactRow{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Service:     c.Service,
		Budget:      c.Budget,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
	_, err := s.db.NewInsert().Model(row).Exec(ctx)
	return err
}

func (s *ContactStore) List(ctx context.Context) ([]core.Contact, error) {
	var rows []contactRow
	if err := s.db.NewSelect().Model(&rows).Order("created_at DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]core.Contact, 0, len(rows))
	for _, r := range rows {
		out = append(out, core.Contact{
			ID:          r.ID,
			Name:        r.Name,
			Email:       r.Email,
			Service:     r.Service,
			Budget:      r.Budget,
			Description: r.Description,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

func (s *ContactStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.NewDelete().Model((*contactRow)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrContactNotFound
	}
	return nil
}

// AdminStore is the Postgres-backed admin directory.
type AdminStore struct {
	db *bun.DB
}

func NewAdminStore(db *bun.DB) *AdminStore { return &AdminStore{db: db} }

func (s *AdminStore) GetByEmail(ctx context.Context, email string) (*core.Admin, error) {
	var row adminRow
	err := s.db.NewSelect().Model(&row).Where("email = ?", email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return adminFromRow(&row), nil
}

func (s *AdminStore) GetByID(ctx context.Context, id string) (*core.Admin, error) {
	var row adminRow
	err := s.db.NewSelect().Model(&row).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return adminFromRow(&row), nil
}

func (s *AdminStore) List(ctx context.Context) ([]core.Admin, error) {
	var rows []adminRow
	if err := s.db.NewSelect().Model(&rows).Order("created_at ASC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]core.Admin, 0, len(rows))
	for i := range rows {
		out = append(out, *adminFromRow(&rows[i]))
	}
	return out, nil
}

func (s *AdminStore) Create(ctx context.Context, a *core.Admin) error {
	row := &adminRow{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
	_, err := s.db.NewInsert().Model(row).Exec(ctx)
	return err
}

func (s *AdminStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.NewDelete().Model((*adminRow)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrAdminNotFound
	}
	return nil
}

func adminFromRow(r *adminRow) *core.Admin {
	return &core.Admin{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Role:         r.Role,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// VerifiedUserStore persists OTP-verified phone numbers.
type VerifiedUserStore struct {
	db *bun.DB
}

func NewVerifiedUserStore(db *bun.DB) *VerifiedUserStore { return &VerifiedUserStore{db: db} }

// Upsert keeps one row per phone; a re-verification refreshes the payload
// and timestamp.
func (s *VerifiedUserStore) Upsert(ctx context.Context, u *core.VerifiedUser) error {
	row := &verifiedUserRow{
		ID:         u.ID,
		Phone:      u.Phone,
		Payload:    u.Payload,
		VerifiedAt: u.VerifiedAt,
	}
	_, err := s.db.NewInsert().
		Model(row).
		On("CONFLICT (phone) DO UPDATE").
		Set("payload = EXCLUDED.payload").
		Set("verified_at = EXCLUDED.verified_at").
		Exec(ctx)
	return err
}

// PriceOfferStore persists tokenized quotes.
type PriceOfferStore struct {
	db *bun.DB
}

func NewPriceOfferStore(db *bun.DB) *PriceOfferStore { return &PriceOfferStore{db: db} }

func (s *PriceOfferStore) Create(ctx context.Context, o *core.PriceOffer) error {
	row := &priceOfferRow{
		Token:               o.Token,
		Email:               o.Email,
		VideosPerWeek:       o.VideosPerWeek,
		PostsPerWeek:        o.PostsPerWeek,
		IncludeAdManagement: o.IncludeAdManagement,
		VideoCost:           o.Price.VideoCost,
		PostCost:            o.Price.PostCost,
		BasePrice:           o.Price.BasePrice,
		AdCost:              o.Price.AdCost,
		TotalPrice:          o.Price.TotalPrice,
		CreatedAt:           o.CreatedAt,
		ExpiresAt:           o.ExpiresAt,
		IsUsed:              o.IsUsed,
		UsedAt:              o.UsedAt,
	}
	_, err := s.db.NewInsert().Model(row).Exec(ctx)
	return err
}

func (s *PriceOfferStore) GetByToken(ctx context.Context, token string) (*core.PriceOffer, error) {
	var row priceOfferRow
	err := s.db.NewSelect().Model(&row).Where("token = ?", token).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &core.PriceOffer{
		Token:               row.Token,
		Email:               row.Email,
		VideosPerWeek:       row.VideosPerWeek,
		PostsPerWeek:        row.PostsPerWeek,
		IncludeAdManagement: row.IncludeAdManagement,
		Price: core.PriceBreakdown{
			VideoCost:  row.VideoCost,
			PostCost:   row.PostCost,
			BasePrice:  row.BasePrice,
			AdCost:     row.AdCost,
			TotalPrice: row.TotalPrice,
		},
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
		IsUsed:    row.IsUsed,
		UsedAt:    row.UsedAt,
	}, nil
}

// MarkUsed flips the usage marker in place, touching only the two columns.
func (s *PriceOfferStore) MarkUsed(ctx context.Context, token string, usedAt time.Time) error {
	_, err := s.db.NewUpdate().
		Model((*priceOfferRow)(nil)).
		Set("is_used = TRUE").
		Set("used_at = ?", usedAt).
		Where("token = ?", token).
		Where("is_used = FALSE").
		Exec(ctx)
	return err
}

func (s *PriceOfferStore) DeleteExpiredBefore(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	res, err := s.db.NewDelete().
		Model((*priceOfferRow)(nil)).
		Where("token IN (?)", s.db.NewSelect().
			Model((*priceOfferRow)(nil)).
			Column("token").
			Where("expires_at < ?", cutoff).
			Limit(limit)).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
