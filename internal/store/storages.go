package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/securecrt-dump/internal/config"
	"github.com/MKhiriev/securecrt-dump/internal/logger"
)

// Storages bundles the backends used by a run. Credentials is nil when no
// database is configured and Loot is nil when the loot file is disabled.
type Storages struct {
	Units       UnitSource
	Credentials CredentialRepository
	Loot        LootWriter

	db *DB
}

// NewStorages opens every backend enabled in cfg. When a database DSN is
// set the connection is opened and migrated before the repository is built.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log = log.GetChildLogger("store")

	s := &Storages{
		Units: NewFileUnitSource(log),
	}

	if !cfg.Loot.Disabled {
		s.Loot = NewFileLootWriter(cfg.Loot.Dir, log)
	}

	if cfg.DB.DSN == "" {
		log.Debug().Msg("no database configured, credentials will not be persisted")
		return s, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to credential database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	s.Credentials = NewCredentialRepository(db, log)

	return s, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
