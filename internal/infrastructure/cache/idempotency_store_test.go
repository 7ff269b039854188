package cache

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/sangkips/salestrack-api/internal/config"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*miniredis.Miniredis, *idempotencyStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewIdempotencyStore(client).(*idempotencyStore)
}

func sampleKey(body string) *entity.IdempotencyKey {
	return &entity.IdempotencyKey{
		Key:          "pay-1",
		Scope:        "ip:192.0.2.1",
		Endpoint:     "POST /api/v1/payments",
		RequestHash:  "abc123",
		ResponseCode: http.StatusCreated,
		ResponseBody: body,
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}
}

func TestIdempotencyStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	mr, store := newStore(t)

	missing, err := store.GetByKey(ctx, "pay-1", "ip:192.0.2.1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Create(ctx, sampleKey(`{"success":true}`)))

	got, err := store.GetByKey(ctx, "pay-1", "ip:192.0.2.1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "POST /api/v1/payments", got.Endpoint)
	assert.Equal(t, "abc123", got.RequestHash)
	assert.Equal(t, http.StatusCreated, got.ResponseCode)
	assert.Equal(t, `{"success":true}`, got.ResponseBody)
	assert.False(t, got.CreatedAt.IsZero())

	ttl := mr.TTL(redisKey("pay-1", "ip:192.0.2.1"))
	assert.True(t, ttl > 23*time.Hour && ttl <= 24*time.Hour, "ttl %s", ttl)

	other, err := store.GetByKey(ctx, "pay-1", "operator:admin")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestIdempotencyStore_FirstWriterWins(t *testing.T) {
	ctx := context.Background()
	_, store := newStore(t)

	require.NoError(t, store.Create(ctx, sampleKey("first")))
	require.NoError(t, store.Create(ctx, sampleKey("second")))

	got, err := store.GetByKey(ctx, "pay-1", "ip:192.0.2.1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.ResponseBody)
}

func TestIdempotencyStore_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, store := newStore(t)

	expired := sampleKey("stale")
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Create(ctx, expired))
	assert.False(t, mr.Exists(redisKey("pay-1", "ip:192.0.2.1")))

	require.NoError(t, store.Create(ctx, sampleKey("fresh")))
	mr.FastForward(25 * time.Hour)

	got, err := store.GetByKey(ctx, "pay-1", "ip:192.0.2.1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, store.DeleteExpired(ctx))
}

func TestIdempotencyStore_CorruptValue(t *testing.T) {
	ctx := context.Background()
	mr, store := newStore(t)

	require.NoError(t, mr.Set(redisKey("pay-1", "ip:192.0.2.1"), "not json"))
	_, err := store.GetByKey(ctx, "pay-1", "ip:192.0.2.1")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(ctx, &config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	_ = client.Close()

	_, err = NewRedisClient(ctx, &config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
