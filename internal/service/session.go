// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/internal/crypto"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/internal/store"
	"github.com/ndolgov/vaultmirror/models"
)

// TimeoutPolicy selects when an unlocked session expires.
type TimeoutPolicy int

const (
	// TimeoutNever keeps the session unlocked until an explicit lock or logout.
	TimeoutNever TimeoutPolicy = iota

	// TimeoutInstant locks as soon as the app is backgrounded; the session
	// never survives a backgrounding event.
	TimeoutInstant

	// TimeoutAfter locks once the configured duration has elapsed. The check
	// is lazy: it runs on foreground resume, not on a background timer.
	TimeoutAfter
)

// SessionConfig carries the expiration policy of a session.
type SessionConfig struct {
	Policy TimeoutPolicy

	// Timeout is the unlock lifetime under [TimeoutAfter]; ignored otherwise.
	Timeout time.Duration
}

type sessionLifecycle struct {
	owner    uuid.UUID
	cache    VaultCache
	records  store.RecordRepository
	metadata store.MetadataRepository
	keychain crypto.KeyChain
	platform PlatformKeyStore
	config   SessionConfig
	logger   *logger.Logger

	// now is swappable in tests; the lazy expiration check depends on it.
	now func() time.Time

	mu        sync.Mutex
	key       []byte
	expiresAt time.Time
}

// NewSessionLifecycle builds the [SessionLifecycle] for owner. The session
// starts Locked. platform may be nil when the device offers no platform
// keystore; the biometric unlock path then reports not-enrolled.
func NewSessionLifecycle(
	owner uuid.UUID,
	cache VaultCache,
	storages *store.Storages,
	keychain crypto.KeyChain,
	platform PlatformKeyStore,
	config SessionConfig,
	log *logger.Logger,
) SessionLifecycle {
	return &sessionLifecycle{
		owner:    owner,
		cache:    cache,
		records:  storages.Records,
		metadata: storages.Metadata,
		keychain: keychain,
		platform: platform,
		config:   config,
		logger:   log,
		now:      time.Now,
	}
}

// Enroll implements [SessionLifecycle].
func (s *sessionLifecycle) Enroll(ctx context.Context, masterPassword string) error {
	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	vaultKey, err := s.keychain.GenerateVaultKey()
	if err != nil {
		return fmt.Errorf("generate vault key: %w", err)
	}

	kek := s.keychain.DeriveKEK(masterPassword, salt)
	wrapped, err := s.keychain.WrapKey(vaultKey, kek)
	if err != nil {
		return fmt.Errorf("wrap vault key: %w", err)
	}

	creds := models.Credentials{KDFSalt: salt, WrappedVaultKey: wrapped}
	if err = s.metadata.SaveCredentials(ctx, s.owner, creds); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	return s.unlockWithKey(ctx, vaultKey)
}

// Unlock implements [SessionLifecycle].
func (s *sessionLifecycle) Unlock(ctx context.Context, masterPassword string) error {
	if s.Unlocked() {
		return nil
	}

	creds, err := s.metadata.Credentials(ctx, s.owner)
	if err != nil {
		if errors.Is(err, store.ErrCredentialsNotFound) {
			return fmt.Errorf("%w: %v", ErrNotEnrolled, err)
		}
		return fmt.Errorf("load credentials: %w", err)
	}

	kek := s.keychain.DeriveKEK(masterPassword, creds.KDFSalt)
	vaultKey, err := s.keychain.UnwrapKey(creds.WrappedVaultKey, kek)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrongPassword, err)
	}

	return s.unlockWithKey(ctx, vaultKey)
}

// UnlockWithPlatformKey implements [SessionLifecycle]. An invalidated
// platform key is a first-class outcome here, not a generic failure: the
// stored wrapped key is cleared so the caller falls back to password unlock
// and re-enrolls exactly once.
func (s *sessionLifecycle) UnlockWithPlatformKey(ctx context.Context) error {
	if s.Unlocked() {
		return nil
	}
	if s.platform == nil {
		return ErrPlatformKeyNotEnrolled
	}

	creds, err := s.metadata.Credentials(ctx, s.owner)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	if len(creds.PlatformWrappedKey) == 0 {
		return ErrPlatformKeyNotEnrolled
	}

	vaultKey, err := s.platform.Unwrap(ctx, creds.PlatformWrappedKey)
	if err != nil {
		if errors.Is(err, ErrPlatformKeyInvalidated) {
			if clearErr := s.metadata.ClearPlatformWrappedKey(ctx, s.owner); clearErr != nil {
				s.logger.Err(clearErr).
					Str("func", "sessionLifecycle.UnlockWithPlatformKey").
					Msg("failed to clear invalidated platform key material")
			}
			return fmt.Errorf("platform unlock: %w", err)
		}
		return fmt.Errorf("platform unlock: %w", err)
	}

	return s.unlockWithKey(ctx, vaultKey)
}

// EnrollPlatformKey implements [SessionLifecycle].
func (s *sessionLifecycle) EnrollPlatformKey(ctx context.Context) error {
	if s.platform == nil {
		return ErrPlatformKeyNotEnrolled
	}

	s.mu.Lock()
	key := make([]byte, len(s.key))
	copy(key, s.key)
	locked := s.key == nil
	s.mu.Unlock()

	if locked {
		panic("session: EnrollPlatformKey while locked")
	}

	wrapped, err := s.platform.Wrap(ctx, key)
	if err != nil {
		return fmt.Errorf("wrap vault key with platform keystore: %w", err)
	}

	creds, err := s.metadata.Credentials(ctx, s.owner)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	creds.PlatformWrappedKey = wrapped

	if err = s.metadata.SaveCredentials(ctx, s.owner, creds); err != nil {
		return fmt.Errorf("persist platform-wrapped key: %w", err)
	}

	return nil
}

// Lock implements [SessionLifecycle]. Key bytes are zeroed on every Locked
// transition, not just dereferenced.
func (s *sessionLifecycle) Lock() {
	s.mu.Lock()
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	s.cache.Reset()
}

// HandleBackground implements [SessionLifecycle].
func (s *sessionLifecycle) HandleBackground() {
	if s.config.Policy == TimeoutInstant && s.Unlocked() {
		s.Lock()
	}
}

// HandleForeground implements [SessionLifecycle].
func (s *sessionLifecycle) HandleForeground() bool {
	s.mu.Lock()
	expired := s.key != nil && !s.expiresAt.IsZero() && s.now().After(s.expiresAt)
	s.mu.Unlock()

	if expired {
		s.Lock()
	}
	return s.Unlocked()
}

// Logout implements [SessionLifecycle].
func (s *sessionLifecycle) Logout(ctx context.Context) error {
	s.Lock()

	if err := s.records.DeleteAll(ctx, s.owner); err != nil {
		return fmt.Errorf("purge records on logout: %w", err)
	}
	if err := s.metadata.DeleteAll(ctx, s.owner); err != nil {
		return fmt.Errorf("purge metadata on logout: %w", err)
	}

	s.logger.Info().
		Str("func", "sessionLifecycle.Logout").
		Str("owner", s.owner.String()).
		Msg("local state destroyed")

	return nil
}

// Unlocked implements [SessionLifecycle].
func (s *sessionLifecycle) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key != nil
}

func (s *sessionLifecycle) unlockWithKey(ctx context.Context, vaultKey []byte) error {
	rows, err := s.records.GetAll(ctx, s.owner)
	if err != nil {
		return fmt.Errorf("load persisted rows: %w", err)
	}

	if err = s.cache.DecryptAll(ctx, vaultKey, rows); err != nil {
		return fmt.Errorf("decrypt vault: %w", err)
	}

	s.mu.Lock()
	s.key = vaultKey
	if s.config.Policy == TimeoutAfter {
		s.expiresAt = s.now().Add(s.config.Timeout)
	} else {
		s.expiresAt = time.Time{}
	}
	s.mu.Unlock()

	return nil
}
