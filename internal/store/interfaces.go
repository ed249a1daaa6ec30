package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the durable table of encrypted records, partitioned by
// owner. It stores ciphertext only; decrypted records never reach this layer.
type RecordRepository interface {
	// GetAll returns every row belonging to owner, in no particular order.
	GetAll(ctx context.Context, owner uuid.UUID) ([]models.LocalRecordEntry, error)

	// Get returns the row with the given id, or an error wrapping
	// [ErrRecordNotFound] if no such row exists.
	Get(ctx context.Context, id uuid.UUID) (models.LocalRecordEntry, error)

	// InsertOrReplace upserts entry by id. An existing row with the same id
	// is fully replaced, including its needs_upload flag.
	InsertOrReplace(ctx context.Context, entry models.LocalRecordEntry) error

	// Delete removes the row with the given id. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every row belonging to owner. Used on logout.
	DeleteAll(ctx context.Context, owner uuid.UUID) error
}

// MetadataRepository persists per-owner session metadata: the last successful
// sync timestamp and the wrapped key material needed to unlock the vault.
type MetadataRepository interface {
	// LastSyncAt returns the timestamp of the last recorded sync cycle for
	// owner, or the zero time if the owner has never synced.
	LastSyncAt(ctx context.Context, owner uuid.UUID) (time.Time, error)

	// SetLastSyncAt records t as the owner's last sync timestamp.
	SetLastSyncAt(ctx context.Context, owner uuid.UUID, t time.Time) error

	// Credentials returns the owner's stored key material, or an error
	// wrapping [ErrCredentialsNotFound] if the owner is not enrolled.
	Credentials(ctx context.Context, owner uuid.UUID) (models.Credentials, error)

	// SaveCredentials upserts the owner's key material.
	SaveCredentials(ctx context.Context, owner uuid.UUID, creds models.Credentials) error

	// ClearPlatformWrappedKey erases the platform-wrapped vault key,
	// forcing a one-time biometric re-setup after key invalidation.
	ClearPlatformWrappedKey(ctx context.Context, owner uuid.UUID) error

	// DeleteAll removes all metadata of owner. Used on logout.
	DeleteAll(ctx context.Context, owner uuid.UUID) error
}
