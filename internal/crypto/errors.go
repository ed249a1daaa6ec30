package crypto

import "errors"

// ErrDecryption marks a record that could not be decrypted: wrong key,
// truncated or tampered ciphertext, or an envelope that does not match
// its outer id/owner. Callers detect it with errors.Is.
var ErrDecryption = errors.New("record decryption failed")
