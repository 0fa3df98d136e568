package config

import (
	"strings"
	"time"
)

// APIConfig contains assistant API client configuration.
type APIConfig struct {
	// BaseURL is the root of the assistant's server. The API version
	// prefix is part of each endpoint path, not the base URL.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout is the per-request timeout for API calls. Itinerary
	// generation can take a while on the server side, so the default
	// is generous.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"90s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(a.BaseURL, "/")
	if a.Timeout <= 0 {
		a.Timeout = 90 * time.Second
	}
}
