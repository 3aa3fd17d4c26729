// Package filex holds small filesystem helpers for the local stores.
package filex

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DirPerm is the mode used for directories that hold credential data.
const DirPerm = 0o700

// EnsureParentDir creates the directory that will contain path, if needed.
// A path without a directory component is left alone.
func EnsureParentDir(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := fs.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// SQLitePath returns the filesystem path behind a SQLite DSN, or "" for
// in-memory databases.
func SQLitePath(dsn string) string {
	if dsn == "" || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}
