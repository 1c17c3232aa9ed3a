package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "pantrychef")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SPOONACULAR_API_KEY", "abc123")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "app", cfg.DBUser)
	assert.Equal(t, "pantrychef", cfg.DBName)
	assert.Equal(t, "abc123", cfg.SpoonacularAPIKey)
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_HOST", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "disable", cfg.DBSSLMode)
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigAPIKeyOptional(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPOONACULAR_API_KEY", "")

	// A missing API key degrades the provider routes but must not prevent
	// the process from starting.
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.SpoonacularAPIKey)
}
