package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-property-dex/internal/config"
	"github.com/MKhiriev/go-property-dex/internal/logger"
)

// ClientStorages groups the catalog repositories into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// ListingRepository stores marketplace listings.
	ListingRepository ListingRepository
	// TokenRepository records created tokens.
	TokenRepository TokenRepository

	db *DB
}

// NewClientStorages initialises the catalog:
//  1. Opens the SQLite database at cfg.DB.DSN, creating the file if it does
//     not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("func", "NewClientStorages").Msg("opening local catalog...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ListingRepository: NewListingRepository(db, logger),
		TokenRepository:   NewTokenRepository(db, logger),
		db:                db,
	}, nil
}

// Close closes the catalog connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
