package models

import "time"

// Session is the credential state exported and re-imported by the Monarch
// client. Outside the client it is treated as an opaque blob: the store
// persists its serialized form without interpreting it.
type Session struct {
	// Token is the provider-issued session token attached to every
	// authenticated request.
	Token string `json:"token"`

	// DeviceUUID identifies this installation to the provider. It is
	// generated once and kept stable across restarts so the provider does
	// not treat every restart as a new device.
	DeviceUUID string `json:"device_uuid"`

	// SavedAt records when the session was last exported.
	SavedAt time.Time `json:"saved_at"`
}
