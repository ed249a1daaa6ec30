package models

import "github.com/google/uuid"

// EncryptedRecord is the ciphertext-and-metadata form of a [Record] as it is
// stored locally and transmitted to the server. The payload is opaque to both
// the database and the server.
type EncryptedRecord struct {
	// ID matches the id of the decrypted record. Stable for the record's lifetime.
	ID uuid.UUID `json:"id"`

	// Owner identifies the user partition the record belongs to.
	Owner uuid.UUID `json:"owner"`

	// Ciphertext is the AEAD-sealed JSON envelope of the record.
	Ciphertext []byte `json:"ciphertext"`

	// Nonce is the random nonce the ciphertext was sealed with.
	Nonce []byte `json:"nonce"`

	// Format versions the envelope layout so old blobs stay readable
	// after a codec change.
	Format int `json:"format"`
}

// LocalRecordEntry is one row of the local encrypted store.
type LocalRecordEntry struct {
	EncryptedRecord

	// NeedsUpload marks a row created or modified locally since the last
	// acknowledged upload. Cleared only after the server accepts the record.
	NeedsUpload bool `json:"needs_upload"`
}
