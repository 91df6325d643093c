package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	log "github.com/sirupsen/logrus"

	apigin "github.com/socialmotion/backend/adapters/gin"
	"github.com/socialmotion/backend/core"
	"github.com/socialmotion/backend/notify"
	"github.com/socialmotion/backend/riverjobs"
	"github.com/socialmotion/backend/sms"
	memorystore "github.com/socialmotion/backend/storage/memory"
	pgstore "github.com/socialmotion/backend/storage/postgres"
	redisstore "github.com/socialmotion/backend/storage/redis"
)

type config struct {
	ListenAddr  string
	DBURL       string
	RedisURL    string
	JWTSecret   string
	FrontendURL string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	OfferRetentionDays int
	PurgeCron          string
	MigrateOnStart     bool
}

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}
	if err := runServe(cfg); err != nil {
		fatal(err)
	}
}

func loadConfig() (*config, error) {
	c := &config{
		ListenAddr:         envOr("LISTEN_ADDR", ":3001"),
		DBURL:              firstEnv("DB_URL", "DATABASE_URL"),
		RedisURL:           strings.TrimSpace(os.Getenv("REDIS_URL")),
		JWTSecret:          strings.TrimSpace(os.Getenv("JWT_SECRET")),
		FrontendURL:        strings.TrimRight(envOr("FRONTEND_URL", "http://localhost:3000"), "/"),
		TwilioAccountSID:   strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
		TwilioAuthToken:    strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
		TwilioFrom:         strings.TrimSpace(os.Getenv("TWILIO_FROM")),
		OfferRetentionDays: envInt("OFFER_RETENTION_DAYS", 30),
		PurgeCron:          envOr("PURGE_CRON", "0 4 * * *"),
		MigrateOnStart:     envBool("MIGRATE_ON_START", true),
	}
	if c.DBURL == "" {
		return nil, fmt.Errorf("DB_URL (or DATABASE_URL) is required")
	}
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return c, nil
}

func runServe(cfg *config) error {
	ctx := context.Background()

	db, err := pgstore.Open(cfg.DBURL)
	if err != nil {
		return err
	}
	defer db.Close()

	pool, err := pgxpool.New(ctx, cfg.DBURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		if err := pgstore.Migrate(ctx, db); err != nil {
			return err
		}
		migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
		if err != nil {
			return fmt.Errorf("river migrator: %w", err)
		}
		if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
			return fmt.Errorf("river migrations: %w", err)
		}
	}

	ephemeral := core.EphemeralStore(memorystore.NewKV())
	if cfg.RedisURL != "" {
		ropts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		ephemeral = redisstore.NewKV(redis.NewClient(ropts))
	}

	hub := notify.NewHub(cfg.FrontendURL)

	svc := core.NewService(core.Options{
		JWTSecret: []byte(cfg.JWTSecret),
		BaseURL:   cfg.FrontendURL,
	}).
		WithEphemeralStore(ephemeral).
		WithNotifier(hub).
		WithContactStore(pgstore.NewContactStore(db)).
		WithAdminStore(pgstore.NewAdminStore(db)).
		WithVerifiedUserStore(pgstore.NewVerifiedUserStore(db)).
		WithPriceOfferStore(pgstore.NewPriceOfferStore(db))

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFrom != "" {
		svc.WithSMSSender(sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom))
	} else {
		log.Warn("twilio credentials missing; SMS dispatch disabled")
	}

	workers := river.NewWorkers()
	riverjobs.RegisterPurgeExpiredOffersWorker(workers, svc)
	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues:  map[string]river.QueueConfig{river.QueueDefault: {MaxWorkers: 10}},
		Workers: workers,
	})
	if err != nil {
		return fmt.Errorf("river client: %w", err)
	}
	if err := riverjobs.AddPurgeExpiredOffersPeriodicJob(riverClient, cfg.PurgeCron,
		riverjobs.PurgeExpiredOffersArgs{RetentionDays: cfg.OfferRetentionDays}, false); err != nil {
		return err
	}
	if err := riverClient.Start(ctx); err != nil {
		return fmt.Errorf("start river: %w", err)
	}
	defer func() { _ = riverClient.Stop(ctx) }()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	apigin.NewService(svc).
		WithHub(hub).
		RegisterAPI(router.Group("/api")).
		RegisterWS(router)

	log.WithField("addr", cfg.ListenAddr).Info("server listening")
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func fatal(err error) {
	if err == nil {
		os.Exit(0)
	}
	if errors.Is(err, http.ErrServerClosed) {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
