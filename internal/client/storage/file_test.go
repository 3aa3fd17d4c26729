package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_WritesJSONObject(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/cfg/app/store.json")
	ctx := context.Background()

	_, err := s.Insert(ctx, "user:abc", []byte("bG9jYWw="))
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/cfg/app/store.json")
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, map[string]string{"user:abc": "bG9jYWw="}, m)

	exists, err := afero.Exists(fs, "/cfg/app/store.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileStore_RestrictedPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "store.json")
	s := NewFileStore(afero.NewOsFs(), path)

	_, err := s.Insert(context.Background(), "k", []byte("v"))
	require.NoError(t, err)

	fi, err := afero.NewOsFs().Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", fi.Mode().Perm().String())
}

func TestFileStore_SharedFileBetweenInstances(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	a := NewFileStore(fs, "/store.json")
	_, err := a.Insert(ctx, "k", []byte("v"))
	require.NoError(t, err)

	b := NewFileStore(fs, "/store.json")
	v, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestFileStore_EmptyFileIsEmptyStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/store.json", nil, 0o600))

	s := NewFileStore(fs, "/store.json")
	keys, err := s.Keys(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileStore_CorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/store.json", []byte("{ not json"), 0o600))

	s := NewFileStore(fs, "/store.json")
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to parse store file")

	_, err = s.Insert(ctx, "k", []byte("v"))
	require.Error(t, err)

	_, err = s.Keys(ctx, "")
	require.Error(t, err)
}

func TestFileStore_ReadOnlyFs(t *testing.T) {
	s := NewFileStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/store.json")

	ok, err := s.Insert(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	require.False(t, ok)
}
