// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallback values applied by applyDefaults when a field is absent from
// every configuration source.
const (
	DefaultHTTPAddress   = "0.0.0.0:8080"
	DefaultTokenIssuer   = "checkdaily"
	DefaultTokenDuration = 30 * 24 * time.Hour
	DefaultDBDriver      = "pgx"
)

// applyDefaults fills zero-valued fields with their documented defaults.
// The token signing key has no default on purpose: it must always come from
// the environment.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrUnknownDBDriver
	}

	return nil
}
