package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvSSHAddr     = "HUEHUNT_SSH_ADDR"
	EnvHostKey     = "HUEHUNT_HOST_KEY"
	EnvIdleTimeout = "HUEHUNT_IDLE_TIMEOUT"
	EnvLogLevel    = "HUEHUNT_LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are not an error; already set variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with HUEHUNT_* variables and validates the result.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvSSHAddr); ok && v != "" {
		cfg.Server.Address = v
	}
	if v, ok := os.LookupEnv(EnvHostKey); ok && v != "" {
		cfg.Server.HostKey = v
	}
	if v, ok := os.LookupEnv(EnvIdleTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s: %w", EnvIdleTimeout, err)
		}
		cfg.Server.IdleTimeout = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	return cfg.Validate()
}
