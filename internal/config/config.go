// ABOUTME: Configuration loading for pressroom
// ABOUTME: Merges an optional TOML file with .env and environment overrides
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultTimeout is the WordPress request timeout when none is set.
const DefaultTimeout = 10 * time.Second

// Config holds everything pressroom needs at construction time. The
// credentials are carried to the WordPress API as-is; pressroom performs
// no authentication of its own.
type Config struct {
	BaseURL     string `toml:"base_url"`
	Username    string `toml:"username"`
	AppPassword string `toml:"app_password"`
	LogLevel    string `toml:"log_level"`

	Timeout time.Duration `toml:"-"`
}

// Load reads configuration in ascending priority: the TOML file at
// $XDG_CONFIG_HOME/pressroom/config.toml, a .env file in the working
// directory, then process environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel: "info",
		Timeout:  DefaultTimeout,
	}

	path := filepath.Join(GetConfigHome(), "pressroom", "config.toml")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	if v := os.Getenv("WP_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("WP_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("WP_APP_PASSWORD"); v != "" {
		cfg.AppPassword = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse WP_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("WP_BASE_URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("WP_USERNAME is required")
	}
	if c.AppPassword == "" {
		return fmt.Errorf("WP_APP_PASSWORD is required")
	}
	return nil
}
