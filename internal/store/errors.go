package store

import "errors"

// ErrSessionNotFound is returned by [SessionStore.Load] when no session blob
// has been persisted at the configured path. Callers match it with
// [errors.Is] to distinguish "nothing saved yet" from a read failure.
var ErrSessionNotFound = errors.New("no persisted session found")
