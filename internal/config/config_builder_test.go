package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validBase returns a config that passes validate() on its own.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		Auth:    Auth{TokenSignKey: "sign-key"},
		Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/checkdaily"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesEarlierSourcesFirst verifies that a value set by an
// earlier config wins over the same field in a later one.
func TestBuild_MergesEarlierSourcesFirst(t *testing.T) {
	b := newConfigBuilder()

	first := validBase()
	first.Server.HTTPAddress = "127.0.0.1:9090"

	second := validBase()
	second.Server.HTTPAddress = "0.0.0.0:1234"
	second.Auth.TokenIssuer = "other-issuer"

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	// unset in first, so the later source fills it in
	assert.Equal(t, "other-issuer", cfg.Auth.TokenIssuer)
}

// TestBuild_AppliesDefaults verifies that absent fields get their documented
// fallback values.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
}

// TestBuild_ValidationFailures verifies each startup invariant.
func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrMissingDatabaseDSN,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrUnknownDBDriver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := validBase()
			tt.mutate(cfg)
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_LoadsFileWhenPathSpecified verifies that a JSON file named by
// an earlier source is parsed and appended as the lowest-priority source.
func TestWithJSON_LoadsFileWhenPathSpecified(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"token_sign_key": "json-sign-key",
			"token_duration": "720h",
		},
		"storage": map[string]any{
			"db": map[string]any{"driver": "sqlite3", "dsn": "checkdaily.db"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
}

// TestWithJSON_NoPathIsNoOp verifies that the builder skips the JSON source
// entirely when no earlier source named a file.
func TestWithJSON_NoPathIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFileSetsError verifies that an unreadable file path
// surfaces when building.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}
