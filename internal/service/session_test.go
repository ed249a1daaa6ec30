// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/internal/mock"
	"github.com/ndolgov/vaultmirror/internal/store"
	"github.com/ndolgov/vaultmirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	svc      *sessionLifecycle
	cache    *MockVaultCache
	records  *mock.MockRecordRepository
	metadata *mock.MockMetadataRepository
	keychain *mock.MockKeyChain
	platform *MockPlatformKeyStore
	owner    uuid.UUID
}

func newTestSession(t *testing.T, ctrl *gomock.Controller, config SessionConfig) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		cache:    NewMockVaultCache(ctrl),
		records:  mock.NewMockRecordRepository(ctrl),
		metadata: mock.NewMockMetadataRepository(ctrl),
		keychain: mock.NewMockKeyChain(ctrl),
		platform: NewMockPlatformKeyStore(ctrl),
		owner:    uuid.New(),
	}

	storages := &store.Storages{Records: f.records, Metadata: f.metadata}
	f.svc = NewSessionLifecycle(f.owner, f.cache, storages, f.keychain, f.platform, config, logger.Nop()).(*sessionLifecycle)

	return f
}

// expectPasswordUnlock arranges one successful password unlock yielding vaultKey.
func (f *sessionFixture) expectPasswordUnlock(password string, vaultKey []byte) {
	salt := []byte("salt-16-bytes-xx")
	wrapped := []byte("wrapped-vault-key")
	kek := []byte("derived-kek")

	f.metadata.EXPECT().Credentials(gomock.Any(), f.owner).
		Return(models.Credentials{KDFSalt: salt, WrappedVaultKey: wrapped}, nil)
	f.keychain.EXPECT().DeriveKEK(password, salt).Return(kek)
	f.keychain.EXPECT().UnwrapKey(wrapped, kek).Return(vaultKey, nil)
	f.records.EXPECT().GetAll(gomock.Any(), f.owner).Return(nil, nil)
	f.cache.EXPECT().DecryptAll(gomock.Any(), vaultKey, nil).Return(nil)
}

// ── Enroll ───────────────────────────────────────────────────────────────────

func TestSession_Enroll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})
	ctx := testContext()

	salt := []byte("fresh-salt")
	vaultKey := []byte("fresh-vault-key-32-bytes-padding")
	kek := []byte("kek")
	wrapped := []byte("wrapped")

	f.keychain.EXPECT().GenerateSalt().Return(salt, nil)
	f.keychain.EXPECT().GenerateVaultKey().Return(vaultKey, nil)
	f.keychain.EXPECT().DeriveKEK("master-pw", salt).Return(kek)
	f.keychain.EXPECT().WrapKey(vaultKey, kek).Return(wrapped, nil)
	f.metadata.EXPECT().SaveCredentials(gomock.Any(), f.owner, models.Credentials{
		KDFSalt:         salt,
		WrappedVaultKey: wrapped,
	}).Return(nil)

	// Enrollment ends in an unlocked session.
	f.records.EXPECT().GetAll(gomock.Any(), f.owner).Return(nil, nil)
	f.cache.EXPECT().DecryptAll(gomock.Any(), vaultKey, nil).Return(nil)

	require.NoError(t, f.svc.Enroll(ctx, "master-pw"))
	assert.True(t, f.svc.Unlocked())
}

// ── Unlock ───────────────────────────────────────────────────────────────────

func TestSession_Unlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})
	f.expectPasswordUnlock("master-pw", []byte("the-vault-key"))

	require.NoError(t, f.svc.Unlock(testContext(), "master-pw"))
	assert.True(t, f.svc.Unlocked())

	// Already unlocked: a second Unlock touches nothing.
	require.NoError(t, f.svc.Unlock(testContext(), "whatever"))
}

func TestSession_Unlock_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})

	salt := []byte("salt")
	wrapped := []byte("wrapped")
	f.metadata.EXPECT().Credentials(gomock.Any(), f.owner).
		Return(models.Credentials{KDFSalt: salt, WrappedVaultKey: wrapped}, nil)
	f.keychain.EXPECT().DeriveKEK("wrong-pw", salt).Return([]byte("wrong-kek"))
	f.keychain.EXPECT().UnwrapKey(wrapped, []byte("wrong-kek")).
		Return(nil, errors.New("cipher: message authentication failed"))

	err := f.svc.Unlock(testContext(), "wrong-pw")
	require.ErrorIs(t, err, ErrWrongPassword)
	assert.False(t, f.svc.Unlocked())
}

func TestSession_Unlock_NotEnrolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})
	f.metadata.EXPECT().Credentials(gomock.Any(), f.owner).
		Return(models.Credentials{}, store.ErrCredentialsNotFound)

	err := f.svc.Unlock(testContext(), "master-pw")
	require.ErrorIs(t, err, ErrNotEnrolled)
}

// ── Platform key ─────────────────────────────────────────────────────────────

func TestSession_UnlockWithPlatformKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})

	blob := []byte("platform-wrapped")
	vaultKey := []byte("the-vault-key")

	f.metadata.EXPECT().Credentials(gomock.Any(), f.owner).
		Return(models.Credentials{PlatformWrappedKey: blob}, nil)
	f.platform.EXPECT().Unwrap(gomock.Any(), blob).Return(vaultKey, nil)
	f.records.EXPECT().GetAll(gomock.Any(), f.owner).Return(nil, nil)
	f.cache.EXPECT().DecryptAll(gomock.Any(), vaultKey, nil).Return(nil)

	require.NoError(t, f.svc.UnlockWithPlatformKey(testContext()))
	assert.True(t, f.svc.Unlocked())
}

func TestSession_UnlockWithPlatformKey_NotEnrolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})
	f.metadata.EXPECT().Credentials(gomock.Any(), f.owner).
		Return(models.Credentials{}, nil)

	err := f.svc.UnlockWithPlatformKey(testContext())
	require.ErrorIs(t, err, ErrPlatformKeyNotEnrolled)
}

func TestSession_UnlockWithPlatformKey_InvalidatedFallsBackToPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})
	ctx := testContext()

	blob := []byte("stale-platform-wrapped")
	f.metadata.EXPECT().Credentials(gomock.Any(), f.owner).
		Return(models.Credentials{PlatformWrappedKey: blob}, nil)

	// Biometric enrollment changed: the keystore key is gone for good, so
	// the stored wrapped copy must be cleared before surfacing the error.
	f.platform.EXPECT().Unwrap(gomock.Any(), blob).
		Return(nil, fmt.Errorf("keystore: %w", ErrPlatformKeyInvalidated))
	f.metadata.EXPECT().ClearPlatformWrappedKey(gomock.Any(), f.owner).Return(nil)

	err := f.svc.UnlockWithPlatformKey(ctx)
	require.ErrorIs(t, err, ErrPlatformKeyInvalidated)
	assert.False(t, f.svc.Unlocked())

	// The password path still works afterwards.
	f.expectPasswordUnlock("master-pw", []byte("the-vault-key"))
	require.NoError(t, f.svc.Unlock(ctx, "master-pw"))
	assert.True(t, f.svc.Unlocked())
}

func TestSession_EnrollPlatformKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})
	ctx := testContext()

	vaultKey := []byte("the-vault-key")
	f.expectPasswordUnlock("master-pw", vaultKey)
	require.NoError(t, f.svc.Unlock(ctx, "master-pw"))

	existing := models.Credentials{KDFSalt: []byte("salt"), WrappedVaultKey: []byte("wrapped")}
	wrapped := []byte("platform-wrapped")

	f.platform.EXPECT().Wrap(gomock.Any(), vaultKey).Return(wrapped, nil)
	f.metadata.EXPECT().Credentials(gomock.Any(), f.owner).Return(existing, nil)
	f.metadata.EXPECT().SaveCredentials(gomock.Any(), f.owner, models.Credentials{
		KDFSalt:            existing.KDFSalt,
		WrappedVaultKey:    existing.WrappedVaultKey,
		PlatformWrappedKey: wrapped,
	}).Return(nil)

	require.NoError(t, f.svc.EnrollPlatformKey(ctx))
}

func TestSession_EnrollPlatformKey_PanicsWhileLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})

	assert.Panics(t, func() {
		_ = f.svc.EnrollPlatformKey(testContext())
	})
}

// ── Lock and timeout policies ────────────────────────────────────────────────

func TestSession_Lock_ZeroesKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})

	vaultKey := []byte("the-vault-key")
	f.expectPasswordUnlock("master-pw", vaultKey)
	require.NoError(t, f.svc.Unlock(testContext(), "master-pw"))

	f.cache.EXPECT().Reset()
	f.svc.Lock()

	assert.False(t, f.svc.Unlocked())
	for i, b := range vaultKey {
		assert.Zerof(t, b, "key byte %d not zeroed", i)
	}
}

func TestSession_HandleBackground_InstantPolicyLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutInstant})
	f.expectPasswordUnlock("master-pw", []byte("the-vault-key"))
	require.NoError(t, f.svc.Unlock(testContext(), "master-pw"))

	f.cache.EXPECT().Reset()
	f.svc.HandleBackground()

	assert.False(t, f.svc.Unlocked())
}

func TestSession_HandleBackground_NeverPolicyKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})
	f.expectPasswordUnlock("master-pw", []byte("the-vault-key"))
	require.NoError(t, f.svc.Unlock(testContext(), "master-pw"))

	f.svc.HandleBackground()
	assert.True(t, f.svc.Unlocked())
}

func TestSession_HandleForeground_LazyExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutAfter, Timeout: time.Minute})

	epoch := time.Unix(1770000000, 0).UTC()
	current := epoch
	f.svc.now = func() time.Time { return current }

	f.expectPasswordUnlock("master-pw", []byte("the-vault-key"))
	require.NoError(t, f.svc.Unlock(testContext(), "master-pw"))

	// Within the window nothing happens.
	current = epoch.Add(30 * time.Second)
	assert.True(t, f.svc.HandleForeground())

	// Past the deadline the lazy check locks the session now.
	current = epoch.Add(2 * time.Minute)
	f.cache.EXPECT().Reset()
	assert.False(t, f.svc.HandleForeground())
	assert.False(t, f.svc.Unlocked())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSession_Logout_DestroysLocalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, SessionConfig{Policy: TimeoutNever})
	ctx := testContext()

	f.expectPasswordUnlock("master-pw", []byte("the-vault-key"))
	require.NoError(t, f.svc.Unlock(ctx, "master-pw"))

	f.cache.EXPECT().Reset()
	f.records.EXPECT().DeleteAll(gomock.Any(), f.owner).Return(nil)
	f.metadata.EXPECT().DeleteAll(gomock.Any(), f.owner).Return(nil)

	require.NoError(t, f.svc.Logout(ctx))
	assert.False(t, f.svc.Unlocked())
}
