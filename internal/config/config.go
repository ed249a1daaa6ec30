// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package config

import (
	"time"
)

// Session timeout policy names accepted in configuration. The empty string
// is treated as [PolicyNever].
const (
	PolicyNever   = "never"
	PolicyInstant = "instant"
	PolicyAfter   = "after"
)

// StructuredConfig is the top-level configuration container for the
// vaultmirror client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the remote vault server endpoint settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds the vault session expiration settings.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds configuration for the background sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings for the outbound transport layer.
type Server struct {
	// BaseURL is the root URL of the vault server
	// (e.g. "https://vault.example.com").
	// Env: SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local storage backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "/home/user/.vaultmirror/vault.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds the expiration settings of an unlocked vault session.
type Session struct {
	// TimeoutPolicy selects when an unlocked session expires: "never",
	// "instant" (lock on backgrounding), or "after" (lock once Timeout has
	// elapsed, checked lazily on foreground resume).
	// Env: SESSION_TIMEOUT_POLICY
	TimeoutPolicy string `env:"TIMEOUT_POLICY"`

	// Timeout is the unlock lifetime under the "after" policy
	// (e.g. "15m", "1h"). Ignored by the other policies.
	// Env: SESSION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds configuration for the background sync job.
type Workers struct {
	// SyncInterval defines how often the background sync cycle runs
	// (e.g. "5m"). Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logging output settings.
type Log struct {
	// FilePath is the path of the log file. When empty, logs go to stdout.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}

// GetConfig loads, merges, and validates the client configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
