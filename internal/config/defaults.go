package config

import "time"

// defaultConfig returns the built-in fallback values. It is merged last, so
// a default only takes effect when no other source supplied the field.
//
// The session file default keeps the path used by earlier versions of this
// sidecar so that existing volume mounts keep working unchanged.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Monarch: Monarch{
			BaseURL:        "https://api.monarchmoney.com",
			RequestTimeout: 30 * time.Second,
		},
		Session: Session{
			File: "/data/monarch_session.pickle",
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8000",
			RequestTimeout: 60 * time.Second,
		},
		Workers: Workers{
			KeepAliveSeconds: 900,
		},
	}
}
