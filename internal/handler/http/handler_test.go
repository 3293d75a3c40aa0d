package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kazijehangir/monarch-bridge/internal/logger"
	"github.com/kazijehangir/monarch-bridge/internal/service"
	"github.com/kazijehangir/monarch-bridge/models"
)

// ─────────────────────────────────────────────
// Mock SessionService
// ─────────────────────────────────────────────

// mockSessionService implements service.SessionService for unit tests.
// Each method field can be overridden per test case.
type mockSessionService struct {
	restoreFn       func(ctx context.Context) bool
	loginFn         func(ctx context.Context, creds models.Credentials) (models.LoginResult, error)
	completeMFAFn   func(ctx context.Context, creds models.Credentials, code string) error
	authenticatedFn func() bool
	persistFn       func(ctx context.Context)
	keepAliveFn     func(ctx context.Context) error
}

func (m *mockSessionService) Restore(ctx context.Context) bool {
	return m.restoreFn(ctx)
}

func (m *mockSessionService) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockSessionService) CompleteMFA(ctx context.Context, creds models.Credentials, code string) error {
	return m.completeMFAFn(ctx, creds, code)
}

func (m *mockSessionService) Authenticated() bool {
	if m.authenticatedFn == nil {
		return false
	}
	return m.authenticatedFn()
}

func (m *mockSessionService) Persist(ctx context.Context) {
	if m.persistFn != nil {
		m.persistFn(ctx)
	}
}

func (m *mockSessionService) KeepAlive(ctx context.Context) error {
	return m.keepAliveFn(ctx)
}

// ─────────────────────────────────────────────
// Mock TransactionService
// ─────────────────────────────────────────────

// mockTransactionService implements service.TransactionService for unit tests.
type mockTransactionService struct {
	listFn   func(ctx context.Context, days int) (json.RawMessage, error)
	updateFn func(ctx context.Context, transactionID string, update models.TransactionUpdate) (bool, error)

	listCalls   int
	updateCalls int
}

func (m *mockTransactionService) List(ctx context.Context, days int) (json.RawMessage, error) {
	m.listCalls++
	return m.listFn(ctx, days)
}

func (m *mockTransactionService) Update(ctx context.Context, transactionID string, update models.TransactionUpdate) (bool, error) {
	m.updateCalls++
	return m.updateFn(ctx, transactionID, update)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(t *testing.T, session service.SessionService, transactions service.TransactionService) *Handler {
	t.Helper()
	svcs := &service.Services{
		SessionService:     session,
		TransactionService: transactions,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// validCreds is a convenience fixture used across multiple tests.
var validCreds = models.Credentials{
	Email:    "user@example.com",
	Password: "secret",
}
