package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.Storage)
	assert.Equal(t, "credkeeper.db", c.DSN)
	assert.Equal(t, "pbkdf2", c.KDF)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.AppSecret)
}

func TestValidate(t *testing.T) {
	c := &Config{}
	require.ErrorIs(t, c.Validate(), ErrMissingSecret)

	c.AppSecret = "s"
	require.NoError(t, c.Validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"app_secret": "from-json",
		"storage":    "file",
		"dsn":        "json.db",
	})

	t.Setenv(EnvSecret, "from-env")
	t.Setenv(EnvStorage, "")
	t.Setenv(EnvDSN, "")
	t.Setenv(EnvKDF, "argon2id")
	t.Setenv(EnvLogLevel, "")

	os.Args = []string{"cli", "-c", path, "-l", "debug"}

	cfg := LoadConfig()
	require.NotNil(t, cfg, "LoadConfig must not return nil")

	assert.Equal(t, "from-env", cfg.AppSecret)
	assert.Equal(t, "file", cfg.Storage)
	assert.Equal(t, "json.db", cfg.DSN)
	assert.Equal(t, "argon2id", cfg.KDF)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli"}

	for _, k := range []string{EnvSecret, EnvStorage, EnvDSN, EnvKDF, EnvLogLevel} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "sqlite", cfg.Storage)
	require.ErrorIs(t, cfg.Validate(), ErrMissingSecret)
}
