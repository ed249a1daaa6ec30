package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ndolgov/vaultmirror/internal/logger"
)

type syncJob struct {
	coordinator SyncCoordinator
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a [SyncJob] that runs coordinator.RunSyncCycle on a
// ticker. The job is idle until Start is called.
func NewSyncJob(coordinator SyncCoordinator, log *logger.Logger) SyncJob {
	return &syncJob{coordinator: coordinator, logger: log}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a background goroutine that runs a sync cycle every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
//
// A cycle refused with [ErrSyncInFlight] (a manual refresh is running) is
// not an error worth logging at warn level; everything else is surfaced in
// the log and retried on the next tick — the ticker itself is the retry,
// so no extra backoff loop can pile up.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.coordinator.RunSyncCycle(jobCtx); err != nil {
					if errors.Is(err, ErrSyncInFlight) {
						continue
					}
					j.logger.Warn().
						Err(err).
						Str("func", "syncJob.Start").
						Msg("background sync cycle failed")
				}
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
