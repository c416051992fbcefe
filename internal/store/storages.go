package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	CreationRepository CreationRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a connection for cfg.DB.Driver (sqlite or postgres).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		CreationRepository: NewCreationRepository(db, logger),
		db:                 db,
	}
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
