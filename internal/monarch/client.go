package monarch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/kazijehangir/monarch-bridge/models"
)

const (
	// defaultUserAgent mimics a desktop browser; the provider serves its
	// own web client and expects browser-looking traffic.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	clientPlatformHeader = "Client-Platform"
	deviceUUIDHeader     = "Device-UUID"
)

// Config carries the connection settings for [NewClient].
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type httpClient struct {
	client *resty.Client

	mu         sync.RWMutex
	token      string
	deviceUUID string
}

// NewClient constructs a Monarch Money [Client]. A fresh device UUID is
// generated; importing a persisted session replaces it so the provider
// keeps seeing one stable device across restarts.
func NewClient(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.monarchmoney.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader(clientPlatformHeader, "web")

	return &httpClient{client: cli, deviceUUID: uuid.NewString()}
}

func (c *httpClient) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpClient) tokenValue() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpClient) deviceUUIDValue() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceUUID
}

func (c *httpClient) Authenticated() bool {
	return c.tokenValue() != ""
}

func (c *httpClient) ExportSession() ([]byte, error) {
	c.mu.RLock()
	session := models.Session{
		Token:      c.token,
		DeviceUUID: c.deviceUUID,
		SavedAt:    time.Now().UTC(),
	}
	c.mu.RUnlock()

	if session.Token == "" {
		return nil, ErrNoSession
	}

	blob, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("export session: %w", err)
	}
	return blob, nil
}

func (c *httpClient) ImportSession(blob []byte) error {
	var session models.Session
	if err := json.Unmarshal(blob, &session); err != nil {
		return fmt.Errorf("import session: %w", err)
	}
	if session.Token == "" {
		return fmt.Errorf("import session: %w", ErrNoSession)
	}

	c.mu.Lock()
	c.token = session.Token
	if session.DeviceUUID != "" {
		c.deviceUUID = session.DeviceUUID
	}
	c.mu.Unlock()

	return nil
}

// loginRequest is the body of POST /auth/login/. SupportsMFA tells the
// provider to answer a second-factor challenge with a structured error
// instead of a plain rejection.
type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	TrustedDevice bool   `json:"trusted_device"`
	SupportsMFA   bool   `json:"supports_mfa"`
	TOTP          string `json:"totp,omitempty"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *httpClient) Login(ctx context.Context, creds models.Credentials) error {
	body := loginRequest{
		Username:      creds.Email,
		Password:      creds.Password,
		TrustedDevice: false,
		SupportsMFA:   true,
	}

	if creds.MFASecret != "" {
		code, err := totpCode(creds.MFASecret, time.Now())
		if err != nil {
			return fmt.Errorf("derive totp code: %w", err)
		}
		body.TOTP = code
	}

	return c.authenticate(ctx, body)
}

func (c *httpClient) MultiFactorAuthenticate(ctx context.Context, creds models.Credentials, code string) error {
	body := loginRequest{
		Username:      creds.Email,
		Password:      creds.Password,
		TrustedDevice: false,
		SupportsMFA:   true,
		TOTP:          code,
	}

	return c.authenticate(ctx, body)
}

func (c *httpClient) authenticate(ctx context.Context, body loginRequest) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(deviceUUIDHeader, c.deviceUUIDValue()).
		SetBody(body).
		Post("/auth/login/")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapAuthError(resp); err != nil {
		return err
	}

	var lr loginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return errors.New("login response missing token")
	}

	c.setToken(lr.Token)
	return nil
}

func (c *httpClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(deviceUUIDHeader, c.deviceUUIDValue())
	if token := c.tokenValue(); token != "" {
		req.SetHeader("Authorization", "Token "+token)
	}
	return req
}

// authErrorBody is the provider's structured authentication error.
type authErrorBody struct {
	ErrorCode string `json:"error_code"`
	Detail    string `json:"detail"`
}

func mapAuthError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body authErrorBody
	_ = json.Unmarshal(resp.Body(), &body)

	if body.ErrorCode == "MFA_REQUIRED" || strings.Contains(strings.ToLower(body.Detail), "multi-factor") {
		return ErrMFARequired
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		detail := body.Detail
		if detail == "" {
			detail = strings.TrimSpace(string(resp.Body()))
		}
		if detail == "" {
			detail = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: %s", ErrLoginFailed, detail)
	}

	return httpError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return ErrUnauthorized
	}

	return httpError(resp)
}

func httpError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
