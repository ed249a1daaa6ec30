package service

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/models"
)

// Mocks are generated into the package itself: tests in this package cannot
// import internal/mock without creating an import cycle.
//go:generate mockgen -source=interfaces.go -destination=service_mock_test.go -package=service

// VaultCache is the in-memory authoritative view of decrypted records for the
// active session and the sole writer of the local encrypted store.
//
// Mutations (Save, Delete, Sync) assume at-most-one-writer-at-a-time: the
// in-memory map and the persisted store are updated as two separate
// non-atomic steps, so concurrent mutators must be serialized by the caller
// (the sync coordinator single-flights its cycles). The pure in-memory reads
// (Find, SortedView, FilterByURI) never block on I/O and are safe to call
// concurrently with each other.
type VaultCache interface {
	// DecryptAll populates the cache by decrypting rows with key and retains
	// the key for subsequent Save calls. A row that fails to decrypt is
	// replaced by a placeholder record of the same id/owner with the
	// sentinel display name [models.CorruptedName]; one bad row never blocks
	// access to the rest of the vault, and no error escapes this call for
	// per-row failures. Panics if the cache is already populated.
	DecryptAll(ctx context.Context, key []byte, rows []models.LocalRecordEntry) error

	// Find returns the record with the given id, if present. O(1), no I/O.
	Find(id uuid.UUID) (models.Record, bool)

	// Save upserts record into the cache (remove-then-add: an existing id is
	// fully replaced, never merged field-by-field) and persists the
	// corresponding row. By default the record is re-encrypted and the row
	// is marked dirty; see [WithEncrypted] and [WithNeedsUpload].
	// Panics if called while no key is loaded.
	Save(ctx context.Context, record models.Record, opts ...SaveOption) error

	// Delete removes the record from the cache and from the local store.
	// Not reversible; no tombstone is kept. Propagating the deletion to the
	// server is the coordinator's job, not this method's.
	// Panics if called while no key is loaded.
	Delete(ctx context.Context, id uuid.UUID) error

	// Sync reconciles the cache against a server delta: every local id
	// absent from delta.IDs is deleted (server deletions are authoritative,
	// even over dirty local edits), then every delta record is saved with
	// the server's ciphertext and needs_upload=false.
	Sync(ctx context.Context, delta models.SyncDelta) error

	// SortedView returns a lazy, restartable sequence of the records ordered
	// by display name (case-sensitive). The sequence iterates a snapshot
	// taken at call time and does not mutate the cache.
	SortedView() iter.Seq[models.Record]

	// FilterByURI returns the Login records whose URI list contains uri.
	FilterByURI(uri string) iter.Seq[models.Record]

	// Len reports the number of records currently decrypted.
	Len() int

	// Unlocked reports whether a key is loaded.
	Unlocked() bool

	// Reset discards all decrypted state and zeroes the retained key.
	Reset()
}

// SaveOptions carries the optional arguments of [VaultCache.Save].
type SaveOptions struct {
	// Encrypted, when set, is persisted as-is instead of re-encrypting the
	// record. Used for server-originated payloads so the stored ciphertext
	// stays byte-identical to what the server sent.
	Encrypted *models.EncryptedRecord

	// NeedsUpload marks the persisted row dirty. Defaults to true.
	NeedsUpload bool
}

// SaveOption mutates [SaveOptions].
type SaveOption func(*SaveOptions)

// WithEncrypted supplies a precomputed ciphertext for the record, skipping
// the redundant crypto work.
func WithEncrypted(enc models.EncryptedRecord) SaveOption {
	return func(o *SaveOptions) { o.Encrypted = &enc }
}

// WithNeedsUpload overrides the dirty flag of the persisted row.
func WithNeedsUpload(needsUpload bool) SaveOption {
	return func(o *SaveOptions) { o.NeedsUpload = needsUpload }
}

// SyncCoordinator drives sync cycles against the remote server. It is the
// only component that talks to the server adapter.
type SyncCoordinator interface {
	// RunSyncCycle performs one full cycle: upload dirty rows, then pull and
	// reconcile the server delta (or the full snapshot on first sync), and
	// return the recomputed sorted view. A failure during upload or pull
	// aborts the remaining work but never corrupts the cache's existing
	// state; partial progress stays applied and the error is surfaced for a
	// user-visible retry. Returns [ErrSyncInFlight] if a cycle is already
	// running.
	RunSyncCycle(ctx context.Context) (iter.Seq[models.Record], error)

	// DeleteRecord deletes a record on the server and then locally. This is
	// the user-facing deletion path; local-only deletes would silently
	// resurrect on the next pull.
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

// SyncJob schedules background sync cycles.
type SyncJob interface {
	// Start launches periodic sync with the given interval, stopping any
	// previously running job first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background job and waits for it to exit.
	Stop()
}

// SessionLifecycle gates vault access behind a live symmetric key and an
// expiration policy. All decrypted state lives only while Unlocked.
type SessionLifecycle interface {
	// Enroll provisions this device for owner: generates the KDF salt and
	// the vault key, wraps the key with the password-derived KEK, persists
	// the credentials, and leaves the session unlocked.
	Enroll(ctx context.Context, masterPassword string) error

	// Unlock derives the KEK from masterPassword, unwraps the vault key and
	// decrypts the persisted records into the cache. Returns an error
	// wrapping [ErrWrongPassword] when the KEK fails to open the wrapped
	// key. No-op when already unlocked.
	Unlock(ctx context.Context, masterPassword string) error

	// UnlockWithPlatformKey unlocks using the platform-keystore-wrapped
	// vault key (the biometric path). If the platform reports that its key
	// was invalidated (e.g. enrollment changed), the stored wrapped key is
	// cleared and the returned error wraps [ErrPlatformKeyInvalidated]: the
	// caller must fall back to password unlock and re-enroll.
	UnlockWithPlatformKey(ctx context.Context) error

	// EnrollPlatformKey wraps the current vault key with the platform
	// keystore and persists it, enabling UnlockWithPlatformKey. Only valid
	// while unlocked.
	EnrollPlatformKey(ctx context.Context) error

	// Lock zeroes the key and discards all decrypted state.
	Lock()

	// HandleBackground is called when the app is backgrounded. Under the
	// Instant timeout policy this locks immediately.
	HandleBackground()

	// HandleForeground is called when the app resumes. It performs the lazy
	// expiration check: a session past its deadline is locked now. No
	// background timer exists. Reports whether the session is still unlocked.
	HandleForeground() bool

	// Logout locks and destroys all local state of the owner: records,
	// credentials, sync metadata. Non-recoverable.
	Logout(ctx context.Context) error

	// Unlocked reports whether the session currently holds a key.
	Unlocked() bool
}

// PlatformKeyStore is the platform-backed key service (Android KeyStore and
// the biometric prompt sit behind it). It is an external collaborator: this
// core only calls it, never implements it.
type PlatformKeyStore interface {
	// Wrap seals key with the platform-backed key.
	Wrap(ctx context.Context, key []byte) ([]byte, error)

	// Unwrap opens a blob produced by Wrap. Returns an error wrapping
	// [ErrPlatformKeyInvalidated] when the platform key was invalidated
	// (e.g. biometric enrollment changed) and the blob can never be opened
	// again.
	Unwrap(ctx context.Context, blob []byte) ([]byte, error)
}
