package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidMonarchConfigs indicates invalid provider settings
	// (for example, an empty base URL or non-positive request timeout).
	ErrInvalidMonarchConfigs = errors.New("invalid monarch configuration")
	// ErrInvalidSessionConfigs indicates invalid session persistence
	// settings (for example, an empty session file path).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive keep-alive interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
