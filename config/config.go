package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: REST backend configuration
//   - realtime.go: push-channel configuration
//   - list.go: list controller defaults
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, etc.)
	IsDev bool `env:"DEV" envDefault:"false"`

	// TokenPath overrides where the bearer token is persisted. Empty means
	// the per-user config directory default.
	TokenPath string `env:"TOKEN_PATH"`

	// API is the REST backend configuration.
	API APIConfig

	// Realtime is the push-channel configuration.
	Realtime RealtimeConfig

	// List holds defaults for paginated list screens.
	List ListConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Realtime.Sanitize()
	c.List.Sanitize()
}
