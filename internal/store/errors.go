package store

import "errors"

var (
	// ErrRecordNotFound is returned by Get when no row matches the id.
	ErrRecordNotFound = errors.New("record not found in local store")

	// ErrCredentialsNotFound is returned when an owner has no stored
	// key material (not enrolled on this device).
	ErrCredentialsNotFound = errors.New("credentials not found in local store")
)
