package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-s string       storage backend
//	-d string       storage DSN / file path
//	-k string       key derivation function
//	-l string       log level
//	-secret string  application secret
//
// Only these flags are parsed (see flagx.FilterArgs); parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-k", "-l", "-secret"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: sqlite, file or memory")
	fs.StringVar(&cfg.DSN, "d", cfg.DSN, "SQLite DSN or JSON store file path")
	fs.StringVar(&cfg.KDF, "k", cfg.KDF, "key derivation function: pbkdf2 or argon2id")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.AppSecret, "secret", cfg.AppSecret, "application secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
