package config

import (
	"errors"
)

// ErrMissingSecret is returned by Validate when no application secret is set.
var ErrMissingSecret = errors.New("application secret is not configured")

// Config holds runtime settings for the credkeeper CLI.
type Config struct {
	AppSecret string
	Storage   string
	DSN       string
	KDF       string
	LogLevel  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = "sqlite"
	c.DSN = "credkeeper.db"
	c.KDF = "pbkdf2"
	c.LogLevel = "info"
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	if c.AppSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
