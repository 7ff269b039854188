// Package servertest starts the API on an in-memory SQLite database for tests.
package servertest

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/config"
	"github.com/sangkips/salestrack-api/internal/infrastructure/database"
	"github.com/sangkips/salestrack-api/internal/presentation/http/middleware"
	"github.com/sangkips/salestrack-api/internal/server"
	"gorm.io/gorm"
)

// Config returns a configuration suitable for tests: SQLite, auth disabled,
// and a rate limit high enough not to interfere.
func Config() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "salestrack-api", Env: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite"},
		Auth: config.AuthConfig{
			TokenExpiry: time.Hour,
			Username:    "admin",
		},
		RateLimit: config.RateLimitConfig{Requests: 10000, Duration: 1},
	}
}

// OpenDB opens a migrated in-memory database private to t
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewSQLiteDB("file:"+name+"?mode=memory&cache=shared", false)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Router builds the API router for cfg on a fresh database
func Router(t testing.TB, cfg *config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = Config()
	}
	db := OpenDB(t)
	limiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests),
		BurstSize:         cfg.RateLimit.Requests,
	})
	t.Cleanup(limiter.Stop)
	router := server.NewRouter(cfg, db, server.Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		RateLimiter: limiter,
	})
	return router, db
}

// New starts an httptest server running the API
func New(t testing.TB, cfg *config.Config) *httptest.Server {
	t.Helper()
	router, _ := Router(t, cfg)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}
