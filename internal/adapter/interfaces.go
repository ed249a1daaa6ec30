// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

// Package adapter provides the transport layer for talking to the vault
// server.
//
// The primary abstraction is [VaultServerAdapter], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPVaultAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
// Transport-level failures (DNS, connect, timeout) wrap [ErrNetwork].
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// VaultServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type VaultServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string) error

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Owner returns the owner id carried in the token's subject claim, or
	// uuid.Nil when no token is set.
	Owner() uuid.UUID

	// GetAll retrieves the full snapshot of the owner's encrypted records.
	// Used on first sync, when there is no local state to reconcile.
	GetAll(ctx context.Context) ([]models.EncryptedRecord, error)

	// Sync requests the delta since the given timestamp: the full live-id
	// set plus the records changed or added since then. deletedIDs reports
	// ids the client has deleted locally; it may be empty.
	Sync(ctx context.Context, since time.Time, deletedIDs []uuid.UUID) (models.SyncDelta, error)

	// Save uploads one encrypted record. The server overwrites its copy
	// unconditionally.
	Save(ctx context.Context, record models.EncryptedRecord) error

	// Delete removes the record with the given id on the server.
	Delete(ctx context.Context, id uuid.UUID) error
}
