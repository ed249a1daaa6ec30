// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyChain]. It reads 16 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateVaultKey implements [KeyChain]. It reads 32 random bytes from the
// OS CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateVaultKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKEK implements [KeyChain]. It derives a 256-bit key-encryption key
// from masterPassword and salt using Argon2id with the parameters stored in
// the receiver. The result exists only in client memory.
func (k *keyChain) DeriveKEK(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// WrapKey implements [KeyChain]. It seals vaultKey with kek using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so
// that UnwrapKey can locate it: blob = nonce ‖ ciphertext.
func (k *keyChain) WrapKey(vaultKey, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	wrapped := gcm.Seal(nil, nonce, vaultKey, nil)
	return append(nonce, wrapped...), nil
}

// UnwrapKey implements [KeyChain]. It opens a blob produced by
// [keyChain.WrapKey]. The blob must be at least as long as the GCM nonce.
// Returns the plaintext vault key, or an error if the blob is too short,
// the KEK is wrong, or the ciphertext is corrupted.
func (k *keyChain) UnwrapKey(wrapped, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(wrapped) < nonceSize {
		return nil, fmt.Errorf("wrapped key too short")
	}

	nonce, ciphertext := wrapped[:nonceSize], wrapped[nonceSize:]

	// An error here almost always means the user entered the wrong master
	// password, producing a wrong KEK.
	vaultKey, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("unwrap vault key: %w", err)
	}

	return vaultKey, nil
}
