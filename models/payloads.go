package models

// LoginData represents decrypted login credentials.
// This structure is serialized to JSON and stored encrypted
// inside an EncryptedRecord when the record type is Login.
type LoginData struct {
	// Name is the human-readable display name of the item.
	Name string `json:"name"`

	// Username is the login identifier used for authentication.
	Username string `json:"username"`

	// Password is the secret credential associated with the username.
	Password string `json:"password"`

	// URIs defines one or more resources where the credentials apply.
	URIs []LoginURI `json:"uris,omitempty"`

	// TOTP contains an optional time-based one-time password seed.
	TOTP *string `json:"totp,omitempty"`
}

// LoginURI represents a single resource matching rule
// associated with a login entry.
type LoginURI struct {
	// URI is the target resource (domain, URL, or application identifier).
	URI string `json:"uri"`

	// Match defines the matching strategy used to associate
	// the login with the given URI.
	Match int `json:"match"`
}

// NoteData represents decrypted free-form textual content.
type NoteData struct {
	// Name is the human-readable display name of the item.
	Name string `json:"name"`

	// Text contains the textual payload.
	Text string `json:"text"`
}

// CardData represents decrypted payment card information.
type CardData struct {
	// Name is the human-readable display name of the item.
	Name string `json:"name"`

	// CardholderName is the name printed on the card.
	CardholderName string `json:"cardholderName"`

	// Number is the primary account number (PAN) of the card.
	Number string `json:"number"`

	// Brand identifies the card network (e.g. Visa, MasterCard).
	Brand string `json:"brand"`

	// ExpMonth is the card expiration month.
	ExpMonth string `json:"expMonth"`

	// ExpYear is the card expiration year.
	ExpYear string `json:"expYear"`

	// Code is the card security code (CVV/CVC).
	Code string `json:"code"`
}
