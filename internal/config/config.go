package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// monarch-bridge application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// The Monarch, Session, and Workers groups intentionally carry no prefix:
// their variable names (MONARCH_EMAIL, SESSION_FILE, KEEP_ALIVE_INTERVAL,
// ...) are part of the deployment contract inherited from earlier versions
// of this sidecar and must stay stable.
type StructuredConfig struct {
	// Monarch holds the upstream provider connection and automated-login
	// settings.
	Monarch Monarch

	// Session holds persistence settings for the provider session blob.
	Session Session

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Monarch holds settings for the upstream Monarch Money connection.
type Monarch struct {
	// BaseURL is the provider API root.
	// Env: MONARCH_BASE_URL
	BaseURL string `env:"MONARCH_BASE_URL"`

	// Email and Password are the optional automated-login credentials.
	// When both are set and no persisted session can be restored at
	// startup, the bridge attempts a login on its own.
	// Env: MONARCH_EMAIL / MONARCH_PASSWORD
	Email    string `env:"MONARCH_EMAIL"`
	Password string `env:"MONARCH_PASSWORD"`

	// MFASecret is the optional TOTP secret used to derive one-time codes
	// during automated login. Must be kept confidential.
	// Env: MONARCH_MFA_SECRET
	MFASecret string `env:"MONARCH_MFA_SECRET"`

	// RequestTimeout bounds every outbound call to the provider
	// (e.g. "30s", "1m").
	// Env: MONARCH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"MONARCH_REQUEST_TIMEOUT"`
}

// Session holds persistence settings for the provider session blob.
type Session struct {
	// File is the path where the session blob is persisted across
	// restarts.
	// Env: SESSION_FILE
	File string `env:"SESSION_FILE"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// KeepAliveSeconds is the interval, in whole seconds, between two
	// keep-alive pings against the provider.
	// Env: KEEP_ALIVE_INTERVAL
	KeepAliveSeconds int `env:"KEEP_ALIVE_INTERVAL"`
}

// KeepAliveInterval returns the keep-alive tick interval as a Duration.
func (w Workers) KeepAliveInterval() time.Duration {
	return time.Duration(w.KeepAliveSeconds) * time.Second
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
