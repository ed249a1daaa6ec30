package service

import "errors"

var (
	// ErrSyncInFlight is returned when a sync cycle is requested while a
	// previous one is still running. Overlapping reconciliations would race
	// on the cache, so the later request is refused, not queued.
	ErrSyncInFlight = errors.New("sync cycle already in flight")

	// ErrWrongPassword is returned by Unlock when the password-derived KEK
	// fails to open the wrapped vault key.
	ErrWrongPassword = errors.New("wrong master password")

	// ErrPlatformKeyInvalidated is returned when the platform keystore can
	// no longer open the stored wrapped key (e.g. biometric enrollment
	// changed). The stored material is cleared; the user must unlock with
	// the password and re-enroll.
	ErrPlatformKeyInvalidated = errors.New("platform key invalidated")

	// ErrPlatformKeyNotEnrolled is returned by UnlockWithPlatformKey when no
	// platform-wrapped key is stored for the owner.
	ErrPlatformKeyNotEnrolled = errors.New("platform key not enrolled")

	// ErrNotEnrolled is returned by Unlock when the owner has no credentials
	// on this device yet.
	ErrNotEnrolled = errors.New("owner not enrolled on this device")
)
