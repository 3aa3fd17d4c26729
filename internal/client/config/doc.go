// Package config loads runtime configuration for the credkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string       storage backend: sqlite, file or memory
//	-d string       SQLite DSN or JSON store file path
//	-k string       key derivation function: pbkdf2 or argon2id
//	-l string       log level: debug, info, warn, error
//	-secret string  application secret used to derive the record key
//
// Environment
//
//	CREDKEEPER_SECRET, CREDKEEPER_STORAGE, CREDKEEPER_DSN,
//	CREDKEEPER_KDF, CREDKEEPER_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "app_secret": "change-me",
//	  "storage": "sqlite",
//	  "dsn": "credkeeper.db",
//	  "kdf": "pbkdf2",
//	  "log_level": "info"
//	}
//
// The application secret has no default; (*Config).Validate reports
// ErrMissingSecret when none of the sources provides it.
package config
