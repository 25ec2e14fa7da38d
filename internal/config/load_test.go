package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-that-is-32-chars-long"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ARTICLE_DATABASE_URL", "postgres://localhost:5432/articles_test")
	t.Setenv("ARTICLE_AUTH_JWT_SECRET", testJWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, EnvProduction, cfg.Server.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 3600, cfg.Auth.AccessTokenLifetimeSeconds)
	assert.Equal(t, 2592000, cfg.Auth.RefreshTokenLifetimeSeconds)
	assert.Equal(t, testJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres://localhost:5432/articles_test", cfg.Database.URL)
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ARTICLE_SERVER_PORT", "9000")
	t.Setenv("ARTICLE_SERVER_LOG_LEVEL", "debug")
	t.Setenv("ARTICLE_SERVER_ENV", "development")
	t.Setenv("ARTICLE_AUTH_ACCESS_TOKEN_LIFETIME_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 60, cfg.Auth.AccessTokenLifetimeSeconds)
}

func TestLoadValidation(t *testing.T) {
	t.Run("short jwt secret", func(t *testing.T) {
		t.Setenv("ARTICLE_DATABASE_URL", "postgres://localhost:5432/articles_test")
		t.Setenv("ARTICLE_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unrecognized environment name", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ARTICLE_SERVER_ENV", "staging")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unrecognized log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ARTICLE_SERVER_LOG_LEVEL", "chatty")

		_, err := Load()
		assert.Error(t, err)
	})
}
