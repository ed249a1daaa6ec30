// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package service

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/internal/adapter"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/internal/store"
	"github.com/ndolgov/vaultmirror/models"
)

type syncCoordinator struct {
	cache    VaultCache
	records  store.RecordRepository
	metadata store.MetadataRepository
	adapter  adapter.VaultServerAdapter
	logger   *logger.Logger

	inFlight atomic.Bool
	now      func() time.Time
}

// NewSyncCoordinator builds the [SyncCoordinator] for the owner authenticated
// on the adapter.
func NewSyncCoordinator(
	cache VaultCache,
	storages *store.Storages,
	serverAdapter adapter.VaultServerAdapter,
	log *logger.Logger,
) SyncCoordinator {
	return &syncCoordinator{
		cache:    cache,
		records:  storages.Records,
		metadata: storages.Metadata,
		adapter:  serverAdapter,
		logger:   log,
		now:      time.Now,
	}
}

// RunSyncCycle implements [SyncCoordinator].
//
// Ordering inside one cycle is fixed: uploads are fully sequenced before the
// delta pull, so an edit pushed in step 1 cannot come back as a stale
// download in step 2 (read-your-writes for the upload path). The last-sync
// timestamp is recorded at cycle start, before any fallible network work —
// deliberately kept even if the cycle fails afterwards.
func (s *syncCoordinator) RunSyncCycle(ctx context.Context) (iter.Seq[models.Record], error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSyncInFlight
	}
	defer s.inFlight.Store(false)

	log := s.logger.GetChildLogger()
	ctx = log.WithContext(ctx)
	owner := s.adapter.Owner()

	localRows, err := s.records.GetAll(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("read local rows: %w", err)
	}

	lastSyncAt, err := s.metadata.LastSyncAt(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("read last sync timestamp: %w", err)
	}

	if err = s.metadata.SetLastSyncAt(ctx, owner, s.now()); err != nil {
		return nil, fmt.Errorf("record sync timestamp: %w", err)
	}

	if err = s.uploadDirty(ctx, localRows); err != nil {
		return nil, err
	}

	if lastSyncAt.IsZero() {
		err = s.pullSnapshot(ctx)
	} else {
		err = s.pullDelta(ctx, lastSyncAt)
	}
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("func", "syncCoordinator.RunSyncCycle").
		Str("owner", owner.String()).
		Int("records", s.cache.Len()).
		Msg("sync cycle finished")

	return s.cache.SortedView(), nil
}

// uploadDirty pushes every needs-upload row and clears its dirty flag. An
// upload failure stops the cycle: unlike a corrupted local row, a failed
// upload is a correctness problem that must not be silently skipped.
func (s *syncCoordinator) uploadDirty(ctx context.Context, rows []models.LocalRecordEntry) error {
	log := logger.FromContext(ctx)

	for _, row := range rows {
		if !row.NeedsUpload {
			continue
		}

		if err := s.adapter.Save(ctx, row.EncryptedRecord); err != nil {
			return fmt.Errorf("upload record %s: %w", row.ID, err)
		}

		record, ok := s.cache.Find(row.ID)
		if !ok {
			// The cache is the decrypted view of these same rows; a dirty
			// row missing from it means the caller synced while locked.
			return fmt.Errorf("uploaded record %s not present in cache", row.ID)
		}
		if err := s.cache.Save(ctx, record, WithEncrypted(row.EncryptedRecord), WithNeedsUpload(false)); err != nil {
			return fmt.Errorf("clear dirty flag for %s: %w", row.ID, err)
		}

		log.Debug().
			Str("func", "syncCoordinator.uploadDirty").
			Str("id", row.ID.String()).
			Msg("uploaded dirty record")
	}

	return nil
}

func (s *syncCoordinator) pullDelta(ctx context.Context, since time.Time) error {
	delta, err := s.adapter.Sync(ctx, since, nil)
	if err != nil {
		return fmt.Errorf("pull delta: %w", err)
	}

	if err = s.cache.Sync(ctx, delta); err != nil {
		return fmt.Errorf("reconcile delta: %w", err)
	}

	return nil
}

// pullSnapshot handles the first-ever sync: there is nothing local to
// reconcile, so every server record is saved individually as clean.
func (s *syncCoordinator) pullSnapshot(ctx context.Context) error {
	records, err := s.adapter.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("pull snapshot: %w", err)
	}

	delta := models.SyncDelta{Records: records}
	for _, enc := range records {
		delta.IDs = append(delta.IDs, enc.ID)
	}

	// Reusing the reconciliation path keeps snapshot and delta application
	// identical; with an empty cache no deletions can occur.
	if err = s.cache.Sync(ctx, delta); err != nil {
		return fmt.Errorf("apply snapshot: %w", err)
	}

	return nil
}

// DeleteRecord implements [SyncCoordinator]. Remote first: deleting only
// locally would resurrect the record on the next pull.
func (s *syncCoordinator) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if err := s.adapter.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record %s on server: %w", id, err)
	}

	if err := s.cache.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record %s locally: %w", id, err)
	}

	return nil
}
