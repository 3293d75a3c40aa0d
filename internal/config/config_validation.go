package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The defaults layer
// guarantees every required field is populated, so failures here mean an
// explicit override broke the contract (e.g. KEEP_ALIVE_INTERVAL=-1).
func (cfg *StructuredConfig) validate() error {
	if cfg.Monarch.BaseURL == "" || cfg.Monarch.RequestTimeout <= 0 {
		return ErrInvalidMonarchConfigs
	}

	if cfg.Session.File == "" {
		return ErrInvalidSessionConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.KeepAliveSeconds <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
