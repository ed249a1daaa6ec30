// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error from
// errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.BaseURL == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	switch cfg.Session.TimeoutPolicy {
	case "", PolicyNever, PolicyInstant:
	case PolicyAfter:
		if cfg.Session.Timeout <= 0 {
			return ErrInvalidSessionConfigs
		}
	default:
		return ErrInvalidSessionConfigs
	}

	return nil
}
