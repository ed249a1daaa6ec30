package models

// Credentials is the locally persisted, non-secret key material of an owner:
// the KDF salt and the vault key wrapped by password-derived and (optionally)
// platform-backed keys. None of these values are usable without the master
// password or the platform keystore.
type Credentials struct {
	// KDFSalt is the Argon2id salt used to derive the KEK from the
	// master password.
	KDFSalt []byte

	// WrappedVaultKey is the vault key sealed with the password-derived KEK.
	WrappedVaultKey []byte

	// PlatformWrappedKey is the vault key sealed by the platform keystore
	// (biometric unlock path). Empty when biometric unlock is not set up.
	PlatformWrappedKey []byte
}
