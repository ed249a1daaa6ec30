package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/models"
)

type metadataRepository struct {
	*DB
	logger *logger.Logger
}

// NewMetadataRepository builds the SQLite-backed [MetadataRepository].
func NewMetadataRepository(db *DB, log *logger.Logger) MetadataRepository {
	return &metadataRepository{DB: db, logger: log}
}

func (m *metadataRepository) LastSyncAt(ctx context.Context, owner uuid.UUID) (time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLastSyncAtQuery(owner)
	if err != nil {
		return time.Time{}, fmt.Errorf("build select last sync query: %w", err)
	}

	var unix int64
	err = m.DB.QueryRowContext(ctx, query, args...).Scan(&unix)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && unix == 0) {
		// Never synced.
		return time.Time{}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "metadataRepository.LastSyncAt").
			Str("owner", owner.String()).
			Msg("failed to query last sync timestamp")
		return time.Time{}, fmt.Errorf("failed to query last sync timestamp: %w", err)
	}

	return time.Unix(unix, 0).UTC(), nil
}

func (m *metadataRepository) SetLastSyncAt(ctx context.Context, owner uuid.UUID, t time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetLastSyncAtQuery(owner, t)
	if err != nil {
		return fmt.Errorf("build set last sync query: %w", err)
	}

	if _, err = m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metadataRepository.SetLastSyncAt").
			Str("owner", owner.String()).
			Msg("failed to persist last sync timestamp")
		return fmt.Errorf("failed to persist last sync timestamp: %w", err)
	}

	return nil
}

func (m *metadataRepository) Credentials(ctx context.Context, owner uuid.UUID) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery(owner)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("build select credentials query: %w", err)
	}

	var creds models.Credentials
	err = m.DB.QueryRowContext(ctx, query, args...).Scan(
		&creds.KDFSalt,
		&creds.WrappedVaultKey,
		&creds.PlatformWrappedKey,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credentials{}, fmt.Errorf("%w: owner %s", ErrCredentialsNotFound, owner)
	}
	if err != nil {
		log.Err(err).
			Str("func", "metadataRepository.Credentials").
			Str("owner", owner.String()).
			Msg("failed to query credentials")
		return models.Credentials{}, fmt.Errorf("failed to query credentials: %w", err)
	}
	if len(creds.WrappedVaultKey) == 0 {
		// A row created by SetLastSyncAt alone carries no key material.
		return models.Credentials{}, fmt.Errorf("%w: owner %s", ErrCredentialsNotFound, owner)
	}

	return creds, nil
}

func (m *metadataRepository) SaveCredentials(ctx context.Context, owner uuid.UUID, creds models.Credentials) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCredentialsQuery(owner, creds)
	if err != nil {
		return fmt.Errorf("build upsert credentials query: %w", err)
	}

	if _, err = m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metadataRepository.SaveCredentials").
			Str("owner", owner.String()).
			Msg("failed to persist credentials")
		return fmt.Errorf("failed to persist credentials: %w", err)
	}

	return nil
}

func (m *metadataRepository) ClearPlatformWrappedKey(ctx context.Context, owner uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearPlatformKeyQuery(owner)
	if err != nil {
		return fmt.Errorf("build clear platform key query: %w", err)
	}

	if _, err = m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metadataRepository.ClearPlatformWrappedKey").
			Str("owner", owner.String()).
			Msg("failed to clear platform-wrapped key")
		return fmt.Errorf("failed to clear platform-wrapped key: %w", err)
	}

	return nil
}

func (m *metadataRepository) DeleteAll(ctx context.Context, owner uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialsQuery(owner)
	if err != nil {
		return fmt.Errorf("build delete credentials query: %w", err)
	}

	if _, err = m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metadataRepository.DeleteAll").
			Str("owner", owner.String()).
			Msg("failed to delete credentials")
		return fmt.Errorf("failed to delete credentials: %w", err)
	}

	return nil
}
