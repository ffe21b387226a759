package domain

// Account is one registered identity. Email is the unique key and is
// matched exactly as stored; no case normalization happens anywhere.
//
// VerificationToken is non-empty only while the account is unverified.
// Once verification succeeds it is cleared for good.
type Account struct {
	Email             string `json:"email"`
	PasswordHash      string `json:"password"`
	Verified          bool   `json:"verified"`
	VerificationToken string `json:"verificationToken,omitempty"`
}
