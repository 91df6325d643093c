package pgstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		service TEXT NOT NULL,
		budget TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'admin',
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS verified_users (
		id TEXT PRIMARY KEY,
		phone TEXT NOT NULL UNIQUE,
		payload JSONB,
		verified_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS price_offers (
		token TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		videos_per_week INT NOT NULL,
		posts_per_week INT NOT NULL,
		include_ad_management BOOLEAN NOT NULL,
		video_cost INT NOT NULL,
		post_cost INT NOT NULL,
		base_price INT NOT NULL,
		ad_cost INT NOT NULL,
		total_price INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		is_used BOOLEAN NOT NULL DEFAULT FALSE,
		used_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS price_offers_expires_at_idx ON price_offers (expires_at)`,
}

// Open connects to Postgres through the pgx stdlib driver and wraps the
// pool in a bun.DB.
func Open(dsn string) (*bun.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return bun.NewDB(sqlDB, pgdialect.New()), nil
}

// Migrate applies the schema idempotently.
func Migrate(ctx context.Context, db *bun.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
