// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package service

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/internal/crypto"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/internal/store"
	"github.com/ndolgov/vaultmirror/models"
)

type vaultCache struct {
	records store.RecordRepository
	codec   crypto.RecordCodec
	logger  *logger.Logger

	// mu protects entries and key. It makes concurrent reads safe; it does
	// NOT serialize mutators against each other across the memory/store
	// boundary — see the interface contract.
	mu      sync.RWMutex
	entries map[uuid.UUID]models.Record
	key     []byte
}

// NewVaultCache builds an empty, locked [VaultCache] writing through to the
// given record repository.
func NewVaultCache(records store.RecordRepository, codec crypto.RecordCodec, log *logger.Logger) VaultCache {
	return &vaultCache{
		records: records,
		codec:   codec,
		logger:  log,
		entries: make(map[uuid.UUID]models.Record),
	}
}

// DecryptAll implements [VaultCache]. Per-row decryption failures degrade to
// a placeholder record instead of aborting: a single corrupted row must not
// lock the user out of the rest of the vault.
func (c *vaultCache) DecryptAll(ctx context.Context, key []byte, rows []models.LocalRecordEntry) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) != 0 {
		panic("vault cache: DecryptAll on a populated cache")
	}

	c.key = slices.Clone(key)

	for _, row := range rows {
		record, err := c.codec.Decrypt(row.EncryptedRecord, c.key)
		if err != nil {
			log.Warn().
				Err(err).
				Str("func", "vaultCache.DecryptAll").
				Str("id", row.ID.String()).
				Msg("record failed to decrypt, substituting placeholder")
			record = models.NewCorruptedRecord(row.ID, row.Owner)
		}
		c.entries[record.ID] = record
	}

	return nil
}

// Find implements [VaultCache].
func (c *vaultCache) Find(id uuid.UUID) (models.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.entries[id]
	return record, ok
}

// Save implements [VaultCache]. The in-memory view is updated first, then the
// encrypted row is persisted; the two steps are not atomic, and a persistence
// failure is returned with the memory update already applied (the store
// catches up on the next successful write of the same id).
func (c *vaultCache) Save(ctx context.Context, record models.Record, opts ...SaveOption) error {
	options := SaveOptions{NeedsUpload: true}
	for _, opt := range opts {
		opt(&options)
	}

	if err := record.Validate(); err != nil {
		return fmt.Errorf("save record: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.mustBeUnlocked("Save")

	var (
		enc models.EncryptedRecord
		err error
	)
	if options.Encrypted != nil {
		enc = *options.Encrypted
	} else {
		enc, err = c.codec.Encrypt(record, c.key)
		if err != nil {
			return fmt.Errorf("encrypt record %s: %w", record.ID, err)
		}
	}

	// Remove-then-add: whole-record replacement, never a field merge.
	delete(c.entries, record.ID)
	c.entries[record.ID] = record

	entry := models.LocalRecordEntry{EncryptedRecord: enc, NeedsUpload: options.NeedsUpload}
	if err = c.records.InsertOrReplace(ctx, entry); err != nil {
		return fmt.Errorf("persist record %s: %w", record.ID, err)
	}

	return nil
}

// Delete implements [VaultCache].
func (c *vaultCache) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mustBeUnlocked("Delete")

	delete(c.entries, id)

	if err := c.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}

	return nil
}

// Sync implements [VaultCache].
//
// The local id set is snapshotted BEFORE any mutation: deletions are decided
// against the pre-delta state, so a record that step 2 adds can never be
// mis-evaluated by step 1.
func (c *vaultCache) Sync(ctx context.Context, delta models.SyncDelta) error {
	log := logger.FromContext(ctx)

	localIDs := c.snapshotIDs()

	alive := make(map[uuid.UUID]struct{}, len(delta.IDs))
	for _, id := range delta.IDs {
		alive[id] = struct{}{}
	}

	// Server deletions are authoritative. A dirty local edit of a record the
	// server deleted is silently lost — documented limitation, not a merge.
	for _, id := range localIDs {
		if _, ok := alive[id]; ok {
			continue
		}
		if err := c.Delete(ctx, id); err != nil {
			return fmt.Errorf("apply server deletion of %s: %w", id, err)
		}
	}

	for _, enc := range delta.Records {
		record, err := c.decryptOrPlaceholder(ctx, enc)
		if err != nil {
			return err
		}
		if err = c.Save(ctx, record, WithEncrypted(enc), WithNeedsUpload(false)); err != nil {
			return fmt.Errorf("apply server record %s: %w", enc.ID, err)
		}
		log.Debug().
			Str("func", "vaultCache.Sync").
			Str("id", enc.ID.String()).
			Msg("applied server record")
	}

	return nil
}

// SortedView implements [VaultCache]. The snapshot is taken and sorted when
// SortedView is called; ranging the returned sequence (any number of times)
// only walks the snapshot.
func (c *vaultCache) SortedView() iter.Seq[models.Record] {
	snapshot := c.snapshotRecords()
	slices.SortFunc(snapshot, func(a, b models.Record) int {
		return strings.Compare(a.DisplayName(), b.DisplayName())
	})

	return func(yield func(models.Record) bool) {
		for _, record := range snapshot {
			if !yield(record) {
				return
			}
		}
	}
}

// FilterByURI implements [VaultCache]. Matching is an exact comparison
// against each URI of each Login record; fuzzy autofill heuristics live in a
// separate subsystem.
func (c *vaultCache) FilterByURI(uri string) iter.Seq[models.Record] {
	snapshot := c.snapshotRecords()

	return func(yield func(models.Record) bool) {
		for _, record := range snapshot {
			if record.Type != models.Login || record.Login == nil {
				continue
			}
			for _, u := range record.Login.URIs {
				if u.URI != uri {
					continue
				}
				if !yield(record) {
					return
				}
				break
			}
		}
	}
}

// Len implements [VaultCache].
func (c *vaultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Unlocked implements [VaultCache].
func (c *vaultCache) Unlocked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key != nil
}

// Reset implements [VaultCache]. The key bytes are zeroed, not merely
// dereferenced.
func (c *vaultCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.key {
		c.key[i] = 0
	}
	c.key = nil
	c.entries = make(map[uuid.UUID]models.Record)
}

func (c *vaultCache) decryptOrPlaceholder(ctx context.Context, enc models.EncryptedRecord) (models.Record, error) {
	c.mu.RLock()
	key := c.key
	c.mu.RUnlock()
	if key == nil {
		panic("vault cache: Sync while locked")
	}

	record, err := c.codec.Decrypt(enc, key)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "vaultCache.decryptOrPlaceholder").
			Str("id", enc.ID.String()).
			Msg("server record failed to decrypt, substituting placeholder")
		return models.NewCorruptedRecord(enc.ID, enc.Owner), nil
	}
	return record, nil
}

func (c *vaultCache) snapshotIDs() []uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	return ids
}

func (c *vaultCache) snapshotRecords() []models.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]models.Record, 0, len(c.entries))
	for _, record := range c.entries {
		records = append(records, record)
	}
	return records
}

// mustBeUnlocked panics on mutation without a key: that is a caller bug with
// security implications (operating on a stale or empty key), not a condition
// to paper over with an error return. Callers hold c.mu.
func (c *vaultCache) mustBeUnlocked(op string) {
	if c.key == nil {
		panic("vault cache: " + op + " while locked")
	}
}
