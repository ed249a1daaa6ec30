package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/migrations"
)

// DB wraps the local SQLite handle shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Open opens (or creates) the local SQLite database at dsn and brings its
// schema up to date. Use ":memory:" for an ephemeral database in tests.
func Open(dsn string, log *logger.Logger) (*DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	// SQLite allows a single writer; the cache is the sole writer anyway,
	// and a second connection would only introduce lock contention.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(`PRAGMA journal_mode = WAL; PRAGMA foreign_keys = ON;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite pragmas: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	return &DB{DB: db, logger: log}, nil
}

// NewDB wraps an existing handle. Used by repository tests with sqlmock.
func NewDB(db *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: db, logger: log}
}
