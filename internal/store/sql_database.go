// Package store implements the persistence layer of the checkdaily server.
// It exposes repositories over a relational database reachable through the
// pgx stdlib driver (PostgreSQL) or go-sqlite3 (local/dev deployments).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/checkdaily/checkdaily/internal/config"
	"github.com/checkdaily/checkdaily/internal/logger"
)

// DB wraps *sql.DB together with the placeholder dialect of the underlying
// driver so that repositories can build queries without knowing which
// backend is in use.
type DB struct {
	*sql.DB

	// Driver is the database/sql driver name ("pgx" or "sqlite3").
	Driver string

	// sb builds parameterised queries with the driver's placeholder format
	// ($1 for PostgreSQL, ? for SQLite).
	sb sq.StatementBuilderType

	logger *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver, configures the pool, and verifies connectivity with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		Driver: "pgx",
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger: log,
	}, nil
}

// NewConnectSQLite opens a file-backed SQLite database, creating the file
// if it does not exist yet. Intended for local and dev deployments.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		Driver: "sqlite3",
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// postgresError extracts the PostgreSQL error code from a driver error,
// or returns an empty string if err is not a pgconn error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported backend.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
