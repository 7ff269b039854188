package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentNumber(t *testing.T) {
	assert.Equal(t, "ORD-2026-007", DocumentNumber("ORD", 2026, 7))
	assert.Equal(t, "PAY-2026-1204", DocumentNumber("PAY", 2026, 1204))
	assert.Equal(t, "OFR-2026-", DocumentPrefix("OFR", 2026))
}

func TestParseOptionalUUID(t *testing.T) {
	id, err := ParseOptionalUUID("  ")
	require.NoError(t, err)
	assert.Nil(t, id)

	_, err = ParseOptionalUUID("not-a-uuid")
	assert.Error(t, err)

	id, err = ParseOptionalUUID("7f1c6f5e-8a47-4c1e-9a0b-5e0d6c1f2a3b")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "7f1c6f5e-8a47-4c1e-9a0b-5e0d6c1f2a3b", id.String())
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	require.True(t, m.Enabled())

	token, expiresAt, err := m.GenerateAccessToken("ops")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Username)

	other := NewJWTManager("another-secret", time.Hour)
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)

	disabled := NewJWTManager("", time.Hour)
	assert.False(t, disabled.Enabled())
	_, _, err = disabled.GenerateAccessToken("ops")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}
