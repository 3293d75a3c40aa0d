// Package service holds the application logic of the bridge: the session
// lifecycle (restore, login, MFA, persist, keep-alive) and the transaction
// operations exposed over HTTP. Services sit between the HTTP handlers and
// the Monarch client so that both the handlers and the background worker
// share one explicitly injected session owner.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kazijehangir/monarch-bridge/models"
)

// SessionService owns the provider session for the whole process: exactly
// one instance exists and every reader (HTTP handlers, keep-alive worker)
// goes through it.
type SessionService interface {
	// Restore loads the persisted session blob into the client. Returns
	// whether a session became active. Never returns an error: load
	// failures are logged and degrade to "must re-authenticate".
	Restore(ctx context.Context) bool

	// Login attempts a full login and reports the outcome as a tagged
	// result. A successful login persists the session exactly once.
	// The error return is reserved for transport/unexpected failures.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)

	// CompleteMFA finishes the second factor. Returns ErrNotAuthenticated
	// (wrapped) when the code did not yield a valid session; success
	// persists the session.
	CompleteMFA(ctx context.Context, creds models.Credentials, code string) error

	// Authenticated reports the authentication state at call time.
	Authenticated() bool

	// Persist saves the current session, best-effort. Failures are logged
	// and swallowed; callers are never notified.
	Persist(ctx context.Context)

	// KeepAlive issues one low-cost provider call to keep the session from
	// idling out. Returns ErrNotAuthenticated when no session is held.
	KeepAlive(ctx context.Context) error
}

// TransactionService exposes the transaction operations of the provider.
type TransactionService interface {
	// List fetches up to the configured cap of transactions inside the
	// window [today-days, today] and returns the provider payload
	// verbatim. Non-positive days falls back to the default window.
	List(ctx context.Context, days int) (json.RawMessage, error)

	// Update applies a partial update to one transaction. Returns false
	// without any remote call when the update carries no fields.
	Update(ctx context.Context, transactionID string, update models.TransactionUpdate) (bool, error)
}

// KeepAliveJob is the periodic background task pinging the provider.
// Once started it runs for the lifetime of the process: ticks are
// independent and a failing ping never terminates the loop.
type KeepAliveJob interface {
	// Start launches the background loop with the given tick interval.
	// Any previously running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until the goroutine has exited.
	// Safe to call when the job is not running.
	Stop()
}
