package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "creator_platform", cfg.DBName)
	assert.Equal(t, 720*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5*time.Second, cfg.FeedTimeout)
	assert.Equal(t, 720*time.Hour, cfg.LogRetention)
	assert.Equal(t, "8080", cfg.Port)
	// Secrets never carry defaults.
	assert.Empty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.DBPassword)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("FEED_TIMEOUT", "garbage")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5*time.Second, cfg.FeedTimeout, "unparseable durations keep the default")
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "postgres",
		DBPassword: "pw", DBName: "creator_platform", DBSSLMode: "disable",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=pw dbname=creator_platform port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
