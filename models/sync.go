package models

import "github.com/google/uuid"

// SyncDelta is the server's answer to an incremental sync request.
type SyncDelta struct {
	// IDs is the complete set of record ids currently alive on the server
	// for this owner. A local id absent from this set was deleted server-side.
	IDs []uuid.UUID `json:"ids"`

	// Records holds the records changed or added since the requested timestamp.
	Records []EncryptedRecord `json:"records"`
}
