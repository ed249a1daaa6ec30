package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ndolgov/vaultmirror/internal/adapter"
	"github.com/ndolgov/vaultmirror/internal/config"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/internal/service"
)

// App runs the vault client without a UI: it authenticates the adapter,
// unlocks (or enrolls) the session, and keeps the local mirror synchronized
// until the process is told to stop.
type App struct {
	services      *service.Services
	serverAdapter adapter.VaultServerAdapter
	config        *config.StructuredConfig
	logger        *logger.Logger
}

// NewApp wires the application runtime. The adapter must be the same instance
// the services were built around.
func NewApp(
	services *service.Services,
	serverAdapter adapter.VaultServerAdapter,
	cfg *config.StructuredConfig,
	log *logger.Logger,
) (*App, error) {
	if services == nil || serverAdapter == nil || cfg == nil {
		return nil, errors.New("client: nil dependency")
	}

	return &App{
		services:      services,
		serverAdapter: serverAdapter,
		config:        cfg,
		logger:        log,
	}, nil
}

// Run implements [Client]. Credentials come from the environment: a headless
// mirror runs unattended (CI exports, scheduled backups), so there is no
// prompt to type a password into.
//
//	VAULTMIRROR_TOKEN           bearer token for the vault server
//	VAULTMIRROR_MASTER_PASSWORD master password of the vault
func (a *App) Run(ctx context.Context) error {
	token := os.Getenv("VAULTMIRROR_TOKEN")
	if token == "" {
		return errors.New("VAULTMIRROR_TOKEN is not set")
	}
	if err := a.serverAdapter.SetToken(token); err != nil {
		return fmt.Errorf("authenticate adapter: %w", err)
	}

	password := os.Getenv("VAULTMIRROR_MASTER_PASSWORD")
	if password == "" {
		return errors.New("VAULTMIRROR_MASTER_PASSWORD is not set")
	}

	if err := a.unlockOrEnroll(ctx, password); err != nil {
		return err
	}
	defer a.services.Session.Lock()

	// The first cycle pulls the full snapshot on a fresh device; its failure
	// is survivable because the background job retries on every tick.
	if _, err := a.services.Coordinator.RunSyncCycle(ctx); err != nil {
		a.logger.Warn().
			Err(err).
			Str("func", "App.Run").
			Msg("initial sync failed, background job will retry")
	}

	a.services.Job.Start(ctx, a.config.Workers.SyncInterval)
	defer a.services.Job.Stop()

	a.logger.Info().
		Str("func", "App.Run").
		Str("owner", a.serverAdapter.Owner().String()).
		Dur("sync_interval", a.config.Workers.SyncInterval).
		Msg("vault mirror running")

	<-ctx.Done()
	return nil
}

// unlockOrEnroll opens the vault, provisioning the device on first use.
func (a *App) unlockOrEnroll(ctx context.Context, password string) error {
	err := a.services.Session.Unlock(ctx, password)
	if err == nil {
		return nil
	}
	if !errors.Is(err, service.ErrNotEnrolled) {
		return fmt.Errorf("unlock vault: %w", err)
	}

	a.logger.Info().
		Str("func", "App.unlockOrEnroll").
		Msg("no local credentials, enrolling this device")

	if err = a.services.Session.Enroll(ctx, password); err != nil {
		return fmt.Errorf("enroll device: %w", err)
	}
	return nil
}
