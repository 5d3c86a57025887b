package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
)

type Storages struct {
	PostRepository PostRepository
	UserRepository UserRepository

	db *DB
}

// NewStorages opens the database, applies migrations and builds the
// repositories on top of it.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	logger.Info().Str("dialect", db.Dialect()).Msg("database migrated")

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		PostRepository: NewPostRepository(db, logger),
		UserRepository: NewUserRepository(db, logger),
		db:             db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Pinger returns the database handle for health checks, or nil when the
// storages were built without one.
func (s *Storages) Pinger() Pinger {
	if s.db == nil {
		return nil
	}
	return s.db
}
