package credentials

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/client/storage"
	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// KeyPrefix namespaces credential entries inside the shared store.
const KeyPrefix = "user:"

// StoreRepository is the Repository backed by a storage.Store.
type StoreRepository struct {
	store storage.Store
}

var _ Repository = (*StoreRepository)(nil)

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// Key returns the store key for identityHash.
func Key(identityHash string) string {
	return KeyPrefix + identityHash
}

func (r *StoreRepository) Exists(ctx context.Context, identityHash string) (bool, error) {
	v, err := r.store.Get(ctx, Key(identityHash))
	if err != nil {
		return false, fmt.Errorf("failed to check credential %s: %w", short(identityHash), err)
	}
	return v != nil, nil
}

// Put stores blob for identityHash. The store performs the final existence
// check atomically with the write, so a concurrent Put for the same hash on
// the same store results in exactly one winner.
func (r *StoreRepository) Put(ctx context.Context, identityHash string, blob string) error {
	ok, err := r.store.Insert(ctx, Key(identityHash), []byte(blob))
	if err != nil {
		return fmt.Errorf("failed to put credential %s: %w", short(identityHash), err)
	}
	if !ok {
		return common.ErrConflict
	}
	return nil
}

func (r *StoreRepository) Get(ctx context.Context, identityHash string) (string, error) {
	v, err := r.store.Get(ctx, Key(identityHash))
	if err != nil {
		return "", fmt.Errorf("failed to get credential %s: %w", short(identityHash), err)
	}
	if v == nil {
		return "", common.ErrorNotFound
	}
	return string(v), nil
}

// Count returns the number of registered identities.
func (r *StoreRepository) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to count credentials: %w", err)
	}
	return len(keys), nil
}

// short trims a hash for error messages and logs.
func short(identityHash string) string {
	if len(identityHash) > 8 {
		return identityHash[:8]
	}
	return identityHash
}
