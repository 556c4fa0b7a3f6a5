package config

import "time"

// DefaultBaseURL is used when API_URL is not supplied. Startup warns once
// instead of failing so local development works out of the box.
const DefaultBaseURL = "http://localhost:5000"

// APIConfig contains REST backend configuration. The same base URL serves
// both the REST endpoints and the push channel.
type APIConfig struct {
	// BaseURL is the backend origin (e.g., "https://api.example.com").
	// The client appends the "/api" prefix itself.
	BaseURL string `env:"API_URL"`

	// Timeout bounds every REST request.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`

	usedDefaultBaseURL bool
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	if a.BaseURL == "" {
		a.BaseURL = DefaultBaseURL
		a.usedDefaultBaseURL = true
	}
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
}

// UsedDefaultBaseURL reports whether BaseURL fell back to DefaultBaseURL.
// Bootstrap emits a one-time warning when this is set.
func (a *APIConfig) UsedDefaultBaseURL() bool { return a.usedDefaultBaseURL }
