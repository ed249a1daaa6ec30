package models

import (
	"fmt"

	"github.com/google/uuid"
)

// RecordType defines the semantic type of a vault record.
// The value determines which payload pointer of [Record] is populated.
type RecordType int

const (
	// Login represents authentication credentials
	// such as username, password, and the URIs they apply to.
	Login RecordType = 1

	// SecureNote represents arbitrary textual data
	// stored as a free-form secret.
	SecureNote RecordType = 2

	// Card represents payment card information.
	// All fields are considered highly sensitive.
	Card RecordType = 3
)

// CorruptedName is the sentinel display name given to the placeholder
// record that replaces a row whose ciphertext could not be decrypted.
// The UI renders such records instead of hiding the rest of the vault.
const CorruptedName = "(corrupted record)"

// Record is a single decrypted vault entry. It exists only in memory for
// the duration of an unlocked session and is never persisted in this form.
//
// Exactly one payload pointer is non-nil, matching Type. Use the
// NewLoginRecord/NewNoteRecord/NewCardRecord constructors to keep the tag
// and the payload consistent; a Record assembled by hand should be checked
// with Validate before it is handed to the cache.
type Record struct {
	// ID is the globally unique, stable identifier of the record.
	ID uuid.UUID `json:"id"`

	// Owner identifies the user the record belongs to.
	Owner uuid.UUID `json:"owner"`

	// Type selects which payload pointer below is populated.
	Type RecordType `json:"type"`

	Login *LoginData `json:"login,omitempty"`
	Note  *NoteData  `json:"note,omitempty"`
	Card  *CardData  `json:"card,omitempty"`
}

// NewLoginRecord builds a Login-typed record for owner with the given payload.
func NewLoginRecord(id, owner uuid.UUID, data LoginData) Record {
	return Record{ID: id, Owner: owner, Type: Login, Login: &data}
}

// NewNoteRecord builds a SecureNote-typed record for owner with the given payload.
func NewNoteRecord(id, owner uuid.UUID, data NoteData) Record {
	return Record{ID: id, Owner: owner, Type: SecureNote, Note: &data}
}

// NewCardRecord builds a Card-typed record for owner with the given payload.
func NewCardRecord(id, owner uuid.UUID, data CardData) Record {
	return Record{ID: id, Owner: owner, Type: Card, Card: &data}
}

// NewCorruptedRecord builds the placeholder substituted for a persisted row
// that failed to decrypt. It keeps the original id and owner so the row can
// still be addressed (and deleted) while its content is unreadable.
func NewCorruptedRecord(id, owner uuid.UUID) Record {
	return Record{ID: id, Owner: owner, Type: SecureNote, Note: &NoteData{Name: CorruptedName}}
}

// DisplayName returns the human-readable name of the record taken from its
// typed payload. Records are sorted by this value in the list view.
func (r Record) DisplayName() string {
	switch r.Type {
	case Login:
		if r.Login != nil {
			return r.Login.Name
		}
	case SecureNote:
		if r.Note != nil {
			return r.Note.Name
		}
	case Card:
		if r.Card != nil {
			return r.Card.Name
		}
	}
	return ""
}

// IsCorrupted reports whether r is the placeholder produced by
// [NewCorruptedRecord] for an undecryptable row.
func (r Record) IsCorrupted() bool {
	return r.Type == SecureNote && r.Note != nil && r.Note.Name == CorruptedName
}

// Validate checks that exactly the payload matching Type is present.
func (r Record) Validate() error {
	var want, got int
	if r.Login != nil {
		got++
	}
	if r.Note != nil {
		got++
	}
	if r.Card != nil {
		got++
	}
	want = 1
	if got != want {
		return fmt.Errorf("record %s: %d payloads set, want %d", r.ID, got, want)
	}

	ok := false
	switch r.Type {
	case Login:
		ok = r.Login != nil
	case SecureNote:
		ok = r.Note != nil
	case Card:
		ok = r.Card != nil
	}
	if !ok {
		return fmt.Errorf("record %s: payload does not match type %d", r.ID, r.Type)
	}
	if r.ID == uuid.Nil {
		return fmt.Errorf("record has no id")
	}
	if r.Owner == uuid.Nil {
		return fmt.Errorf("record %s has no owner", r.ID)
	}
	return nil
}
