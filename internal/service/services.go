// Package service hosts the vault core: the decrypted in-memory cache, the
// sync coordinator that reconciles it with the server, and the session
// lifecycle that gates both behind the vault key.
package service

import (
	"github.com/ndolgov/vaultmirror/internal/adapter"
	"github.com/ndolgov/vaultmirror/internal/crypto"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/internal/store"
)

// Services bundles the vault core for consumers (the UI layer and the
// headless client). One instance per signed-in user; the cache inside is the
// single holder of the decrypted view.
type Services struct {
	Cache       VaultCache
	Session     SessionLifecycle
	Coordinator SyncCoordinator
	Job         SyncJob
}

// NewServices wires the core together for the owner authenticated on
// serverAdapter.
func NewServices(
	storages *store.Storages,
	serverAdapter adapter.VaultServerAdapter,
	platform PlatformKeyStore,
	sessionConfig SessionConfig,
	log *logger.Logger,
) *Services {
	codec := crypto.NewRecordCodec()
	keychain := crypto.NewKeyChain()
	owner := serverAdapter.Owner()

	cache := NewVaultCache(storages.Records, codec, log)
	coordinator := NewSyncCoordinator(cache, storages, serverAdapter, log)
	session := NewSessionLifecycle(owner, cache, storages, keychain, platform, sessionConfig, log)
	job := NewSyncJob(coordinator, log)

	return &Services{
		Cache:       cache,
		Session:     session,
		Coordinator: coordinator,
		Job:         job,
	}
}
