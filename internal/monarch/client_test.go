package monarch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazijehangir/monarch-bridge/models"
)

// newTestClient builds an httpClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpClient {
	t.Helper()
	c := NewClient(Config{BaseURL: serverURL, Timeout: 5 * time.Second})
	return c.(*httpClient)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	var gotBody loginRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(deviceUUIDHeader))
		assert.Equal(t, "web", r.Header.Get(clientPlatformHeader))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-abc"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.True(t, c.Authenticated())
	assert.Equal(t, "user@example.com", gotBody.Username)
	assert.True(t, gotBody.SupportsMFA)
	assert.Empty(t, gotBody.TOTP)
}

func TestLogin_WithMFASecretSendsTOTP(t *testing.T) {
	var gotBody loginRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"token":"tok-abc"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	creds := models.Credentials{
		Email:     "user@example.com",
		Password:  "pw",
		MFASecret: "GEZDGNBVGEZDGNBVGEZDGNBVGEZDGNBV",
	}

	require.NoError(t, c.Login(context.Background(), creds))
	assert.Len(t, gotBody.TOTP, 6)
}

func TestLogin_MFARequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error_code":"MFA_REQUIRED","detail":"Multi-Factor Auth Required"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

	require.ErrorIs(t, err, ErrMFARequired)
	assert.False(t, c.Authenticated())
}

func TestLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"Unable to log in with provided credentials."}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "wrong"})

	require.ErrorIs(t, err, ErrLoginFailed)
	assert.Contains(t, err.Error(), "Unable to log in")
	assert.False(t, c.Authenticated())
}

func TestLogin_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMFARequired)
	assert.NotErrorIs(t, err, ErrLoginFailed)
}

// ── MultiFactorAuthenticate ─────────────────────────────────────────────────

func TestMultiFactorAuthenticate_Success(t *testing.T) {
	var gotBody loginRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"token":"tok-mfa"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	creds := models.Credentials{Email: "user@example.com", Password: "pw"}

	require.NoError(t, c.MultiFactorAuthenticate(context.Background(), creds, "123456"))
	assert.Equal(t, "123456", gotBody.TOTP)
	assert.True(t, c.Authenticated())
}

// ── Session export/import ───────────────────────────────────────────────────

func TestExportSession_NoSession(t *testing.T) {
	c := newTestClient(t, "http://localhost:0")

	_, err := c.ExportSession()

	require.ErrorIs(t, err, ErrNoSession)
}

func TestSession_ExportImportRoundTrip(t *testing.T) {
	c := newTestClient(t, "http://localhost:0")
	c.setToken("tok-round-trip")
	originalDevice := c.deviceUUIDValue()

	blob, err := c.ExportSession()
	require.NoError(t, err)

	restored := newTestClient(t, "http://localhost:0")
	require.NoError(t, restored.ImportSession(blob))

	assert.True(t, restored.Authenticated())
	assert.Equal(t, "tok-round-trip", restored.tokenValue())
	assert.Equal(t, originalDevice, restored.deviceUUIDValue(),
		"device UUID should survive restarts")
}

func TestImportSession_Garbage(t *testing.T) {
	c := newTestClient(t, "http://localhost:0")

	require.Error(t, c.ImportSession([]byte("not json")))
	assert.False(t, c.Authenticated())
}

func TestImportSession_EmptyToken(t *testing.T) {
	c := newTestClient(t, "http://localhost:0")

	err := c.ImportSession([]byte(`{"token":""}`))

	require.ErrorIs(t, err, ErrNoSession)
	assert.False(t, c.Authenticated())
}

// ── GraphQL calls ───────────────────────────────────────────────────────────

func TestGetAccounts_SendsTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, "Token tok-abc", r.Header.Get("Authorization"))

		var req gqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "GetAccounts", req.OperationName)

		_, _ = w.Write([]byte(`{"data":{"accounts":[{"id":"a1"}]}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setToken("tok-abc")

	data, err := c.GetAccounts(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"accounts":[{"id":"a1"}]}`, string(data))
}

func TestGetTransactions_ForwardsWindowVerbatim(t *testing.T) {
	var gotVars map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotVars = req.Variables

		_, _ = w.Write([]byte(`{"data":{"allTransactions":{"totalCount":1,"results":[{"id":"t1"}]}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setToken("tok-abc")

	filters := models.TransactionFilters{Limit: 1000, StartDate: "2025-01-01", EndDate: "2025-01-31"}
	data, err := c.GetTransactions(context.Background(), filters)

	require.NoError(t, err)
	assert.JSONEq(t, `{"allTransactions":{"totalCount":1,"results":[{"id":"t1"}]}}`, string(data))

	assert.Equal(t, float64(1000), gotVars["limit"])
	innerFilters, ok := gotVars["filters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2025-01-01", innerFilters["startDate"])
	assert.Equal(t, "2025-01-31", innerFilters["endDate"])
}

func TestGraphQL_ErrorsArraySurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"something exploded"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setToken("tok-abc")

	_, err := c.GetAccounts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "something exploded")
}

func TestGraphQL_UnauthorizedMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setToken("tok-expired")

	_, err := c.GetAccounts(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
}

// ── UpdateTransaction ───────────────────────────────────────────────────────

func TestUpdateTransaction_MapsFieldNames(t *testing.T) {
	var gotVars map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotVars = req.Variables

		_, _ = w.Write([]byte(`{"data":{"updateTransaction":{"transaction":{"id":"t1"},"errors":[]}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setToken("tok-abc")

	fields := map[string]any{"notes": "x", "needs_review": true, "category_id": "c9"}
	require.NoError(t, c.UpdateTransaction(context.Background(), "t1", fields))

	input, ok := gotVars["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "t1", input["id"])
	assert.Equal(t, "x", input["notes"])
	assert.Equal(t, true, input["needsReview"])
	assert.Equal(t, "c9", input["categoryId"])
	assert.NotContains(t, input, "category_id")
}

func TestUpdateTransaction_UnsupportedField(t *testing.T) {
	c := newTestClient(t, "http://localhost:0")
	c.setToken("tok-abc")

	err := c.UpdateTransaction(context.Background(), "t1", map[string]any{"balance": 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transaction field")
}

func TestUpdateTransaction_PayloadErrorsSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"updateTransaction":{"transaction":null,"errors":[{"message":"category not found"}]}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setToken("tok-abc")

	err := c.UpdateTransaction(context.Background(), "t1", map[string]any{"category_id": "nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "category not found")
}
