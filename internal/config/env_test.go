package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "720h")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "checkdaily.db")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:8081")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("CONFIG", "/etc/checkdaily/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "checkdaily.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/etc/checkdaily/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.Auth.TokenSignKey)
	assert.Zero(t, cfg.Auth.TokenDuration)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}
