// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/models"
)

// qb is the shared statement builder. SQLite uses ? placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var recordColumns = []string{"id", "owner", "ciphertext", "nonce", "format", "needs_upload"}

func buildSelectOwnerRecordsQuery(owner uuid.UUID) (string, []any, error) {
	return qb.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"owner": owner.String()}).
		ToSql()
}

func buildSelectRecordQuery(id uuid.UUID) (string, []any, error) {
	return qb.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
}

func buildUpsertRecordQuery(entry models.LocalRecordEntry) (string, []any, error) {
	return qb.Insert("records").
		Columns(recordColumns...).
		Values(
			entry.ID.String(),
			entry.Owner.String(),
			entry.Ciphertext,
			entry.Nonce,
			entry.Format,
			entry.NeedsUpload,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			owner        = excluded.owner,
			ciphertext   = excluded.ciphertext,
			nonce        = excluded.nonce,
			format       = excluded.format,
			needs_upload = excluded.needs_upload`).
		ToSql()
}

func buildDeleteRecordQuery(id uuid.UUID) (string, []any, error) {
	return qb.Delete("records").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
}

func buildDeleteOwnerRecordsQuery(owner uuid.UUID) (string, []any, error) {
	return qb.Delete("records").
		Where(sq.Eq{"owner": owner.String()}).
		ToSql()
}

func buildSelectCredentialsQuery(owner uuid.UUID) (string, []any, error) {
	return qb.Select("kdf_salt", "wrapped_vault_key", "platform_wrapped_key").
		From("credentials").
		Where(sq.Eq{"owner": owner.String()}).
		ToSql()
}

func buildUpsertCredentialsQuery(owner uuid.UUID, creds models.Credentials) (string, []any, error) {
	return qb.Insert("credentials").
		Columns("owner", "kdf_salt", "wrapped_vault_key", "platform_wrapped_key").
		Values(owner.String(), creds.KDFSalt, creds.WrappedVaultKey, creds.PlatformWrappedKey).
		Suffix(`ON CONFLICT (owner) DO UPDATE SET
			kdf_salt             = excluded.kdf_salt,
			wrapped_vault_key    = excluded.wrapped_vault_key,
			platform_wrapped_key = excluded.platform_wrapped_key`).
		ToSql()
}

func buildSelectLastSyncAtQuery(owner uuid.UUID) (string, []any, error) {
	return qb.Select("last_sync_at").
		From("credentials").
		Where(sq.Eq{"owner": owner.String()}).
		ToSql()
}

// Last-sync bookkeeping must work even before credentials are enrolled,
// hence upsert instead of plain update.
func buildSetLastSyncAtQuery(owner uuid.UUID, t time.Time) (string, []any, error) {
	return qb.Insert("credentials").
		Columns("owner", "last_sync_at").
		Values(owner.String(), t.Unix()).
		Suffix(`ON CONFLICT (owner) DO UPDATE SET last_sync_at = excluded.last_sync_at`).
		ToSql()
}

func buildClearPlatformKeyQuery(owner uuid.UUID) (string, []any, error) {
	return qb.Update("credentials").
		Set("platform_wrapped_key", nil).
		Where(sq.Eq{"owner": owner.String()}).
		ToSql()
}

func buildDeleteCredentialsQuery(owner uuid.UUID) (string, []any, error) {
	return qb.Delete("credentials").
		Where(sq.Eq{"owner": owner.String()}).
		ToSql()
}
