package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source. The server refuses to start without one.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	// ErrUnknownDBDriver indicates an unsupported database driver name.
	// Supported drivers are "pgx" and "sqlite3".
	ErrUnknownDBDriver = errors.New("unknown database driver")
)
