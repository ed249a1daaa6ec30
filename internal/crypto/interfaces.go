package crypto

import "github.com/ndolgov/vaultmirror/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// RecordCodec seals and opens vault records with a caller-supplied symmetric
// key. It knows nothing about the network, the database, or key lifecycle —
// the session layer owns the key, the codec only uses it.
type RecordCodec interface {
	// Encrypt serializes record and seals it with key, producing the
	// ciphertext form that is persisted locally and sent to the server.
	Encrypt(record models.Record, key []byte) (models.EncryptedRecord, error)

	// Decrypt opens enc with key and returns the decrypted record.
	// Returns an error wrapping [ErrDecryption] on key mismatch, malformed
	// ciphertext, or an envelope whose id/owner do not match enc — it never
	// silently yields wrong data.
	Decrypt(enc models.EncryptedRecord, key []byte) (models.Record, error)
}

// KeyChain owns client-side key material handling in the zero-knowledge
// scheme. The vault key encrypts all records and never leaves the client
// unwrapped; the KEK is derived from the master password and exists only
// in memory.
//
//	salt, vaultKey = GenerateSalt() + GenerateVaultKey()
//	kek            = DeriveKEK(password, salt)
//	wrapped        = WrapKey(vaultKey, kek)        — safe to store at rest
//	vaultKey       = UnwrapKey(wrapped, kek)       — on unlock
type KeyChain interface {
	// GenerateSalt produces a random 16-byte KDF salt. The salt is not a
	// secret; it exists so equal passwords derive different KEKs.
	GenerateSalt() ([]byte, error)

	// GenerateVaultKey produces a random 32-byte (256-bit) vault key.
	GenerateVaultKey() ([]byte, error)

	// DeriveKEK derives a 256-bit key-encryption key from the master
	// password and salt using Argon2id.
	DeriveKEK(masterPassword string, salt []byte) []byte

	// WrapKey seals the vault key with the KEK via AES-256-GCM.
	// The blob layout is nonce ‖ ciphertext.
	WrapKey(vaultKey, kek []byte) ([]byte, error)

	// UnwrapKey opens a blob produced by WrapKey. An authentication failure
	// almost always means a wrong master password (wrong KEK).
	UnwrapKey(wrapped, kek []byte) ([]byte, error)
}
