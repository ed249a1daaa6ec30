package store

import (
	"fmt"

	"github.com/ndolgov/vaultmirror/internal/logger"
)

// Storages groups the local repositories over one SQLite handle.
type Storages struct {
	Records  RecordRepository
	Metadata MetadataRepository

	db *DB
}

// NewStorages opens the local database at dsn and wires the repositories.
func NewStorages(dsn string, log *logger.Logger) (*Storages, error) {
	db, err := Open(dsn, log)
	if err != nil {
		return nil, fmt.Errorf("open storages: %w", err)
	}

	return &Storages{
		Records:  NewRecordRepository(db, log),
		Metadata: NewMetadataRepository(db, log),
		db:       db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
