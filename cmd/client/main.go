package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ndolgov/vaultmirror/internal/adapter"
	"github.com/ndolgov/vaultmirror/internal/client"
	"github.com/ndolgov/vaultmirror/internal/config"
	"github.com/ndolgov/vaultmirror/internal/logger"
	"github.com/ndolgov/vaultmirror/internal/service"
	"github.com/ndolgov/vaultmirror/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewLogger("vaultmirror").Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg)

	serverAdapter := adapter.NewHTTPVaultAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.RequestTimeout,
	})

	storages, err := store.NewStorages(cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	// No platform keystore on a headless host; biometric unlock is a mobile
	// bridge concern.
	services := service.NewServices(storages, serverAdapter, nil, sessionConfig(cfg), log)

	app, err := client.NewApp(services, serverAdapter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func newLogger(cfg *config.StructuredConfig) *logger.Logger {
	if cfg.Log.FilePath != "" {
		return logger.NewFileLogger("vaultmirror", cfg.Log.FilePath)
	}
	return logger.NewLogger("vaultmirror")
}

func sessionConfig(cfg *config.StructuredConfig) service.SessionConfig {
	switch cfg.Session.TimeoutPolicy {
	case config.PolicyInstant:
		return service.SessionConfig{Policy: service.TimeoutInstant}
	case config.PolicyAfter:
		return service.SessionConfig{Policy: service.TimeoutAfter, Timeout: cfg.Session.Timeout}
	default:
		return service.SessionConfig{Policy: service.TimeoutNever}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
