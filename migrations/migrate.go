// Package migrations applies the embedded goose SQL migrations for the
// configured database backend. PostgreSQL and SQLite need different DDL
// (identity columns, timestamp types), so each dialect keeps its own
// migration tree.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations for the given goose dialect
// ("pgx" or "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := "postgres"
	if dialect == "sqlite3" {
		dir = "sqlite"
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
