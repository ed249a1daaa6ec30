// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ndolgov/vaultmirror/models"
)

// FormatV1 is the only envelope format currently produced: AES-256-GCM over
// the JSON-encoded record, with the record's id and owner bound as the
// additional authenticated data.
const FormatV1 = 1

type recordCodec struct{}

// NewRecordCodec constructs the AES-256-GCM [RecordCodec].
func NewRecordCodec() RecordCodec {
	return &recordCodec{}
}

// Encrypt implements [RecordCodec]. The record is serialized to JSON and
// sealed with a fresh random nonce. The id and owner travel in clear in the
// [models.EncryptedRecord] envelope and are also mixed into the GCM
// additional data, so a blob re-attached to a different envelope fails to
// open instead of decrypting under the wrong identity.
func (c *recordCodec) Encrypt(record models.Record, key []byte) (models.EncryptedRecord, error) {
	if err := record.Validate(); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("encrypt record: %w", err)
	}

	plaintext, err := json.Marshal(record)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("marshal record: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedRecord{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, plaintext, envelopeAAD(record.ID[:], record.Owner[:]))

	return models.EncryptedRecord{
		ID:         record.ID,
		Owner:      record.Owner,
		Ciphertext: ct,
		Nonce:      nonce,
		Format:     FormatV1,
	}, nil
}

// Decrypt implements [RecordCodec]. Every failure mode — unknown format,
// short nonce, authentication-tag mismatch, malformed JSON, or an inner
// id/owner that disagrees with the envelope — is reported as an error
// wrapping [ErrDecryption].
func (c *recordCodec) Decrypt(enc models.EncryptedRecord, key []byte) (models.Record, error) {
	if enc.Format != FormatV1 {
		return models.Record{}, fmt.Errorf("%w: unknown format %d", ErrDecryption, enc.Format)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return models.Record{}, err
	}
	if len(enc.Nonce) != gcm.NonceSize() {
		return models.Record{}, fmt.Errorf("%w: bad nonce length %d", ErrDecryption, len(enc.Nonce))
	}

	plaintext, err := gcm.Open(nil, enc.Nonce, enc.Ciphertext, envelopeAAD(enc.ID[:], enc.Owner[:]))
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	var record models.Record
	if err = json.Unmarshal(plaintext, &record); err != nil {
		return models.Record{}, fmt.Errorf("%w: unmarshal envelope: %v", ErrDecryption, err)
	}
	if err = record.Validate(); err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	if record.ID != enc.ID || record.Owner != enc.Owner {
		return models.Record{}, fmt.Errorf("%w: envelope id/owner mismatch", ErrDecryption)
	}

	return record, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: invalid key length %d", ErrDecryption, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func envelopeAAD(id, owner []byte) []byte {
	aad := make([]byte, 0, len(id)+len(owner))
	aad = append(aad, id...)
	return append(aad, owner...)
}
