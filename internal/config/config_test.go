package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_MIN_CONNS", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("DEFAULT_TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)
	assert.Equal(t, "http://localhost:3000", cfg.App.FrontendURL)
	assert.Equal(t, "UTC", cfg.App.DefaultTimezone)
	assert.Equal(t, "1h", cfg.JWT.AccessExpiration)
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "40")
	t.Setenv("DB_MIN_CONNS", "8")
	t.Setenv("FRONTEND_URL", "https://app.rosterly.example")
	t.Setenv("DEFAULT_TIMEZONE", "Australia/Sydney")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(40), cfg.Database.MaxConns)
	assert.Equal(t, int32(8), cfg.Database.MinConns)
	assert.Equal(t, "https://app.rosterly.example", cfg.App.FrontendURL)
	assert.Equal(t, "Australia/Sydney", cfg.App.DefaultTimezone)
}

func TestLoad_InvalidPoolBounds(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MinConnsAboveMaxConns(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_MIN_CONNS", "9")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
