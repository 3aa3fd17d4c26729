// Package storage provides the local persistent key-value stores credential
// entries are written to. Three backends share the Store contract: SQLite
// (default), a JSON file on an afero filesystem, and process memory.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/filex"
	"github.com/spf13/afero"
)

// Store is a minimal persistent key-value store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Insert writes value only if key is absent and reports whether it did;
//     the check and the write are atomic with respect to the same Store.
//   - Keys returns all keys starting with prefix in ascending order.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Insert(ctx context.Context, key string, value []byte) (bool, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Open returns the Store for backend. dsn is the SQLite data source name or
// the JSON file path; it is ignored for the memory backend.
func Open(ctx context.Context, backend, dsn string) (Store, error) {
	switch backend {
	case "", BackendSQLite:
		if err := filex.EnsureParentDir(afero.NewOsFs(), filex.SQLitePath(dsn)); err != nil {
			return nil, err
		}
		db, err := InitDatabase(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	case BackendFile:
		return NewFileStore(afero.NewOsFs(), dsn), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
