package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, EnsureParentDir(fs, "/data/vault/store.json"))

	fi, err := fs.Stat("/data/vault")
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureParentDir(fs, "/a/b/c.db"))
	require.NoError(t, EnsureParentDir(fs, "/a/b/c.db"))
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureParentDir(fs, "credkeeper.db"))

	entries, err := afero.ReadDir(fs, ".")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestEnsureParentDir_OsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "store.db")

	require.NoError(t, EnsureParentDir(afero.NewOsFs(), target))

	fi, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DirPerm), fi.Mode().Perm()&0o700)
}

func TestEnsureParentDir_ErrorWhenParentIsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/blocker", []byte("x"), 0o600))

	err := EnsureParentDir(afero.NewReadOnlyFs(fs), "/blocker/sub/store.db")
	require.Error(t, err)
}

func TestSQLitePath(t *testing.T) {
	tests := map[string]string{
		"":                           "",
		":memory:":                   "",
		"file::memory:?cache=shared": "",
		"file:vault.db?mode=memory":  "",
		"credkeeper.db":              "credkeeper.db",
		"/var/lib/ck/vault.db":       "/var/lib/ck/vault.db",
		"file:/var/lib/ck/vault.db?_txlock=immediate": "/var/lib/ck/vault.db",
	}
	for dsn, want := range tests {
		require.Equal(t, want, SQLitePath(dsn), dsn)
	}
}
