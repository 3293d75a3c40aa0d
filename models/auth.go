package models

// Credentials carries everything needed for a Monarch Money login attempt.
// MFASecret is the optional TOTP secret; when present, a one-time code is
// derived from it and submitted together with the first login request.
type Credentials struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	MFASecret string `json:"mfa_secret,omitempty"`
}

// MFARequest completes the second factor for a pending login. The provider
// requires the full credentials to be re-asserted alongside the code.
type MFARequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

// LoginStatus enumerates the possible outcomes of a login attempt.
type LoginStatus string

const (
	// LoginAuthenticated means the provider accepted the credentials and a
	// session token is now held.
	LoginAuthenticated LoginStatus = "success"

	// LoginMFARequired means the provider wants a second factor before it
	// will issue a session token. This is a normal outcome, not an error.
	LoginMFARequired LoginStatus = "mfa_required"

	// LoginRejected means the provider explicitly refused the credentials.
	LoginRejected LoginStatus = "rejected"
)

// LoginResult is the tagged outcome of a login attempt. Handlers switch on
// Status explicitly; transport and other unexpected failures travel as a
// separate error value and never appear here.
type LoginResult struct {
	Status LoginStatus
	// Reason carries the provider-supplied message for LoginRejected.
	Reason string
}
