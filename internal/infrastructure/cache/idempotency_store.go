// Package cache provides Redis-backed stores shared between API instances.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sangkips/salestrack-api/internal/config"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
)

const idempotencyKeyPrefix = "salestrack:idempotency:"

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

type idempotencyStore struct {
	client redis.Cmdable
}

// NewIdempotencyStore returns an IdempotencyRepository that keeps keys in
// Redis and lets Redis expire them.
func NewIdempotencyStore(client redis.Cmdable) domainRepo.IdempotencyRepository {
	return &idempotencyStore{client: client}
}

func redisKey(key, scope string) string {
	return idempotencyKeyPrefix + scope + ":" + key
}

func (s *idempotencyStore) GetByKey(ctx context.Context, key, scope string) (*entity.IdempotencyKey, error) {
	raw, err := s.client.Get(ctx, redisKey(key, scope)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ikey entity.IdempotencyKey
	if err := json.Unmarshal(raw, &ikey); err != nil {
		return nil, fmt.Errorf("decode idempotency key: %w", err)
	}
	return &ikey, nil
}

func (s *idempotencyStore) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	ttl := time.Until(ikey.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if ikey.CreatedAt.IsZero() {
		ikey.CreatedAt = time.Now()
	}
	raw, err := json.Marshal(ikey)
	if err != nil {
		return err
	}
	// first writer wins, matching the unique index of the SQL store
	return s.client.SetNX(ctx, redisKey(ikey.Key, ikey.Scope), raw, ttl).Err()
}

// DeleteExpired is a no-op: Redis expires keys on its own.
func (s *idempotencyStore) DeleteExpired(ctx context.Context) error {
	return nil
}
