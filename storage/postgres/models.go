package pgstore

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

type contactRow struct {
	bun.BaseModel `bun:"table:contacts"`

	ID          string    `bun:"id,pk"`
	Name        string    `bun:"name,notnull"`
	Email       string    `bun:"email,notnull"`
	Service     string    `bun:"service,notnull"`
	Budget      string    `bun:"budget,notnull"`
	Description string    `bun:"description,notnull"`
	Status      string    `bun:"status,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type adminRow struct {
	bun.BaseModel `bun:"table:admins"`

	ID           string    `bun:"id,pk"`
	Name         string    `bun:"name,notnull"`
	Email        string    `bun:"email,notnull,unique"`
	Role         string    `bun:"role,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type verifiedUserRow struct {
	bun.BaseModel `bun:"table:verified_users"`

	ID         string          `bun:"id,pk"`
	Phone      string          `bun:"phone,notnull,unique"`
	Payload    json.RawMessage `bun:"payload,type:jsonb"`
	VerifiedAt time.Time       `bun:"verified_at,notnull"`
}

type priceOfferRow struct {
	bun.BaseModel `bun:"table:price_offers"`

	Token               string     `bun:"token,pk"`
	Email               string     `bun:"email,notnull"`
	VideosPerWeek       int        `bun:"videos_per_week,notnull"`
	PostsPerWeek        int        `bun:"posts_per_week,notnull"`
	IncludeAdManagement bool       `bun:"include_ad_management,notnull"`
	VideoCost           int        `bun:"video_cost,notnull"`
	PostCost            int        `bun:"post_cost,notnull"`
	BasePrice           int        `bun:"base_price,notnull"`
	AdCost              int        `bun:"ad_cost,notnull"`
	TotalPrice          int        `bun:"total_price,notnull"`
	CreatedAt           time.Time  `bun:"created_at,notnull"`
	ExpiresAt           time.Time  `bun:"expires_at,notnull"`
	IsUsed              bool       `bun:"is_used,notnull,default:false"`
	UsedAt              *time.Time `bun:"used_at"`
}
