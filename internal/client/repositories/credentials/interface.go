package credentials

import "context"

// Repository maps identity hashes to encrypted credential blobs.
// There is deliberately no update or delete operation.
type Repository interface {
	Exists(ctx context.Context, identityHash string) (bool, error)
	Put(ctx context.Context, identityHash string, blob string) error
	Get(ctx context.Context, identityHash string) (string, error)
	Count(ctx context.Context) (int, error)
}
