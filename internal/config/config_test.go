package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "test.db")
	t.Setenv("JWT_EXPIRY_HOURS", "2")

	cfg := Load()

	assert.Equal(t, "salestrack-api", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.DSN())
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenExpiry)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.App.IsProduction())
}

func TestPostgresDSN(t *testing.T) {
	db := DatabaseConfig{
		Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p",
		Name: "sales", SSLMode: "disable", Timezone: "UTC",
	}
	assert.Equal(t, "host=db user=u password=p dbname=sales port=5432 sslmode=disable TimeZone=UTC", db.DSN())
}
