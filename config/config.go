package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Assistant API client configuration
//   - storage.go: Credential store and trip archive configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, text
	// log output). Set DEV=true or NODE_ENV=development for
	// development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// AdminEmails lists the accounts granted the admin role, comma
	// separated. The token endpoint carries no role claim, so the
	// mapping is client-side policy.
	AdminEmails []string `env:"ADMIN_EMAILS" envDefault:""`

	// Assistant API configuration
	API APIConfig `envPrefix:"API_"`

	// Credential store configuration
	Credentials CredentialsConfig `envPrefix:"CRED_"`

	// Redis configuration, used when the credential store backend is
	// set to redis.
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Saved trip archive configuration
	Archive ArchiveConfig `envPrefix:"ARCHIVE_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Credentials.Sanitize()
	c.Archive.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
