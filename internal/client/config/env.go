package config

import "os"

const (
	EnvSecret   = "CREDKEEPER_SECRET"
	EnvStorage  = "CREDKEEPER_STORAGE"
	EnvDSN      = "CREDKEEPER_DSN"
	EnvKDF      = "CREDKEEPER_KDF"
	EnvLogLevel = "CREDKEEPER_LOG_LEVEL"
)

// parseEnv overlays Config with the non-empty CREDKEEPER_* variables.
func parseEnv(cfg *Config) {
	overlay(&cfg.AppSecret, os.Getenv(EnvSecret))
	overlay(&cfg.Storage, os.Getenv(EnvStorage))
	overlay(&cfg.DSN, os.Getenv(EnvDSN))
	overlay(&cfg.KDF, os.Getenv(EnvKDF))
	overlay(&cfg.LogLevel, os.Getenv(EnvLogLevel))
}
