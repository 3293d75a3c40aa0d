package monarch

import "errors"

var (
	// ErrMFARequired signals that the provider wants a second factor
	// before issuing a session token. A normal login sub-outcome, not a
	// failure.
	ErrMFARequired = errors.New("multi-factor authentication required")

	// ErrLoginFailed signals that the provider explicitly rejected the
	// credentials. The wrapped message carries the provider's detail.
	ErrLoginFailed = errors.New("login failed")

	// ErrUnauthorized signals that the provider rejected the session token
	// on an authenticated call.
	ErrUnauthorized = errors.New("provider rejected session token")

	// ErrNoSession is returned by ExportSession when there is nothing to
	// export.
	ErrNoSession = errors.New("no active session")
)
