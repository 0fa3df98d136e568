package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// StoreBackend selects where session credentials are persisted.
type StoreBackend string

const (
	// StoreBackendFile keeps credentials in a JSON file under the
	// user's home directory.
	StoreBackendFile StoreBackend = "file"
	// StoreBackendRedis keeps credentials in Redis, keyed by profile.
	StoreBackendRedis StoreBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler so the env library
// rejects unknown backends at load time.
func (b *StoreBackend) UnmarshalText(text []byte) error {
	switch StoreBackend(text) {
	case StoreBackendFile, StoreBackendRedis:
		*b = StoreBackend(text)
		return nil
	default:
		return fmt.Errorf("unknown credential store backend %q (valid: file, redis)", string(text))
	}
}

// CredentialsConfig contains credential store configuration.
type CredentialsConfig struct {
	// Backend selects the store implementation.
	Backend StoreBackend `env:"STORE" envDefault:"file"`

	// File is the path of the credential file for the file backend.
	// Defaults to ~/.wanderlanka/credentials.json when empty.
	File string `env:"FILE" envDefault:""`

	// Profile namespaces credentials in the redis backend so several
	// accounts can coexist on one Redis instance.
	Profile string `env:"PROFILE" envDefault:"default"`
}

// Sanitize fills defaults that depend on the running user's home
// directory.
func (c *CredentialsConfig) Sanitize() {
	if c.File == "" {
		c.File = filepath.Join(homeDir(), ".wanderlanka", "credentials.json")
	}
	if c.Profile == "" {
		c.Profile = "default"
	}
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// ArchiveConfig contains the local saved-trip archive configuration.
type ArchiveConfig struct {
	// Path is the SQLite database file. Defaults to
	// ~/.wanderlanka/trips.db when empty.
	Path string `env:"PATH" envDefault:""`
}

// Sanitize fills the default archive location.
func (a *ArchiveConfig) Sanitize() {
	if a.Path == "" {
		a.Path = filepath.Join(homeDir(), ".wanderlanka", "trips.db")
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
