// Package store persists the provider session blob across process restarts.
//
// The blob is opaque: it is whatever the Monarch client exports, and the
// store writes and reads it byte-for-byte without interpreting it.
// Persistence is best-effort by contract — callers log and swallow store
// errors, degrading to "must re-authenticate" rather than failing.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore loads and saves a single opaque session blob at a fixed
// location.
type SessionStore interface {
	// Load reads the persisted blob. Returns [ErrSessionNotFound] (wrapped)
	// when nothing has been persisted yet; any other error means the blob
	// exists but could not be read.
	Load(ctx context.Context) ([]byte, error)

	// Save writes the blob, creating parent directories as needed. The
	// previous blob, if any, is replaced.
	Save(ctx context.Context, blob []byte) error
}
