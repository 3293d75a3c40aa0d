// Package monarch provides the client for the Monarch Money API.
//
// The primary abstraction is [Client], which decouples the service layer
// from the provider's wire protocol (a small REST surface for
// authentication plus GraphQL for data access). The in-memory session token
// held by the client is the single shared mutable resource of the process:
// replacement is atomic under a mutex, and concurrent readers tolerate a
// stale view for one scheduling step.
//
// Error values defined in errors.go are mapped from provider responses so
// that callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrMFARequired] for the second-factor challenge).
package monarch

import (
	"context"
	"encoding/json"

	"github.com/kazijehangir/monarch-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/monarch_client_mock.go -package=mock

// Client defines the subset of the Monarch Money API consumed by the bridge.
type Client interface {
	// Login attempts a full login with the given credentials. When the
	// credentials carry an MFA secret, a one-time code is derived from it
	// and submitted with the attempt. Returns [ErrMFARequired] (wrapped)
	// when the provider demands a second factor, [ErrLoginFailed] (wrapped,
	// with the provider message) when it rejects the credentials, or
	// another error on transport failure. On success the session token is
	// captured for all subsequent calls.
	Login(ctx context.Context, creds models.Credentials) error

	// MultiFactorAuthenticate completes a pending second factor. The
	// provider requires the full credentials to be re-asserted alongside
	// the one-time code; no challenge state is kept between calls.
	MultiFactorAuthenticate(ctx context.Context, creds models.Credentials, code string) error

	// Authenticated reports whether a session token is currently held.
	// It never touches the network and may be stale by one scheduling
	// step under concurrent token replacement.
	Authenticated() bool

	// ExportSession serializes the current session state to an opaque
	// blob suitable for [ImportSession]. Returns an error when no session
	// is held.
	ExportSession() ([]byte, error)

	// ImportSession restores session state previously produced by
	// ExportSession, replacing any token currently held.
	ImportSession(blob []byte) error

	// GetAccounts fetches the account list. Cheap relative to the other
	// data calls, which is why the keep-alive loop uses it as its ping.
	GetAccounts(ctx context.Context) (json.RawMessage, error)

	// GetTransactions fetches transactions matching filters and returns
	// the provider payload verbatim; the bridge never reinterprets it.
	GetTransactions(ctx context.Context, filters models.TransactionFilters) (json.RawMessage, error)

	// UpdateTransaction applies a partial update to one transaction.
	// Only the supplied fields are sent.
	UpdateTransaction(ctx context.Context, transactionID string, fields map[string]any) error
}
