package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types (durations as "30s"-style strings).
type StructuredJSONConfig struct {
	Monarch struct {
		BaseURL        string   `json:"base_url"`
		Email          string   `json:"email"`
		Password       string   `json:"password"`
		MFASecret      string   `json:"mfa_secret"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"monarch,omitempty"`

	Session struct {
		File string `json:"file"`
	} `json:"session,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		KeepAliveSeconds int `json:"keep_alive_seconds"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Monarch: Monarch{
			BaseURL:        jsonCfg.Monarch.BaseURL,
			Email:          jsonCfg.Monarch.Email,
			Password:       jsonCfg.Monarch.Password,
			MFASecret:      jsonCfg.Monarch.MFASecret,
			RequestTimeout: time.Duration(jsonCfg.Monarch.RequestTimeout),
		},
		Session: Session{
			File: jsonCfg.Session.File,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			KeepAliveSeconds: jsonCfg.Workers.KeepAliveSeconds,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
