package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/config"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/internal/infrastructure/cache"
	"github.com/sangkips/salestrack-api/internal/infrastructure/database"
	"github.com/sangkips/salestrack-api/internal/infrastructure/repository"
	"github.com/sangkips/salestrack-api/internal/server"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(&cfg.App)
	slog.SetDefault(logger)

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Idempotency keys live in Redis when configured, otherwise in the database
	var idempotencyRepo domainRepo.IdempotencyRepository
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer client.Close()
		idempotencyRepo = cache.NewIdempotencyStore(client)
		logger.Info("using redis idempotency store", "addr", cfg.Redis.Addr)
	} else {
		idempotencyRepo = repository.NewIdempotencyRepository(db)
		go purgeExpiredKeys(ctx, idempotencyRepo, logger)
	}

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set, API authentication is disabled")
	}

	router := server.NewRouter(cfg, db, server.Options{
		IdempotencyRepo: idempotencyRepo,
		Logger:          logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", "name", cfg.App.Name, "port", port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// purgeExpiredKeys deletes expired idempotency keys once an hour
func purgeExpiredKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.DeleteExpired(ctx); err != nil {
				logger.Warn("failed to purge expired idempotency keys", "error", err)
			}
		}
	}
}
