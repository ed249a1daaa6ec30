package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository builds the SQLite-backed [RecordRepository].
func NewRecordRepository(db *DB, log *logger.Logger) RecordRepository {
	return &recordRepository{DB: db, logger: log}
}

func (r *recordRepository) GetAll(ctx context.Context, owner uuid.UUID) ([]models.LocalRecordEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnerRecordsQuery(owner)
	if err != nil {
		return nil, fmt.Errorf("build select records query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetAll").
			Str("owner", owner.String()).
			Msg("failed to query owner records")
		return nil, fmt.Errorf("failed to query owner records: %w", err)
	}
	defer rows.Close()

	var entries []models.LocalRecordEntry
	for rows.Next() {
		entry, scanErr := scanRecordEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.GetAll").
				Str("owner", owner.String()).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("failed to scan record row: %w", scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.GetAll").
			Str("owner", owner.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating record rows: %w", rowsErr)
	}

	return entries, nil
}

func (r *recordRepository) Get(ctx context.Context, id uuid.UUID) (models.LocalRecordEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordQuery(id)
	if err != nil {
		return models.LocalRecordEntry{}, fmt.Errorf("build select record query: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	entry, err := scanRecordEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalRecordEntry{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		log.Err(err).
			Str("func", "recordRepository.Get").
			Str("id", id.String()).
			Msg("failed to scan record row")
		return models.LocalRecordEntry{}, fmt.Errorf("failed to scan record row: %w", err)
	}

	return entry, nil
}

func (r *recordRepository) InsertOrReplace(ctx context.Context, entry models.LocalRecordEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(entry)
	if err != nil {
		return fmt.Errorf("build upsert record query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.InsertOrReplace").
			Str("id", entry.ID.String()).
			Str("owner", entry.Owner.String()).
			Msg("failed to execute upsert for record")
		return fmt.Errorf("failed to upsert record (id=%s): %w", entry.ID, err)
	}

	return nil
}

func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(id)
	if err != nil {
		return fmt.Errorf("build delete record query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.Delete").
			Str("id", id.String()).
			Msg("failed to execute delete for record")
		return fmt.Errorf("failed to delete record (id=%s): %w", id, err)
	}

	return nil
}

func (r *recordRepository) DeleteAll(ctx context.Context, owner uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnerRecordsQuery(owner)
	if err != nil {
		return fmt.Errorf("build delete owner records query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteAll").
			Str("owner", owner.String()).
			Msg("failed to execute delete for owner records")
		return fmt.Errorf("failed to delete records (owner=%s): %w", owner, err)
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecordEntry(row rowScanner) (models.LocalRecordEntry, error) {
	var (
		entry    models.LocalRecordEntry
		id, owner string
	)

	if err := row.Scan(
		&id,
		&owner,
		&entry.Ciphertext,
		&entry.Nonce,
		&entry.Format,
		&entry.NeedsUpload,
	); err != nil {
		return models.LocalRecordEntry{}, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return models.LocalRecordEntry{}, fmt.Errorf("parse record id: %w", err)
	}
	parsedOwner, err := uuid.Parse(owner)
	if err != nil {
		return models.LocalRecordEntry{}, fmt.Errorf("parse record owner: %w", err)
	}

	entry.ID = parsedID
	entry.Owner = parsedOwner
	return entry, nil
}
