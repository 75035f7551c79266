package store

import (
	"context"

	"github.com/checkdaily/checkdaily/internal/config"
	"github.com/checkdaily/checkdaily/internal/logger"
)

// Repositories bundles every repository backed by the shared database
// connection. Constructed once at startup and injected into the services.
type Repositories struct {
	UserRepository  UserRepository
	CheckRepository CheckRepository

	db *DB
}

// NewRepositories connects to the configured database backend and wires all
// repositories on top of it.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		UserRepository:  NewUserRepository(db, log),
		CheckRepository: NewCheckRepository(db, log),
		db:              db,
	}, nil
}

// DB exposes the underlying connection for migrations and shutdown.
func (r *Repositories) DB() *DB {
	return r.db
}

// Close releases the database connection.
func (r *Repositories) Close() error {
	return r.db.Close()
}
