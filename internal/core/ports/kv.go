package ports

import "context"

// KV is the persisted key-value store the repository store writes through
// to. Implementations hold opaque blobs; the store owns serialization.
type KV interface {
	// Get returns the blob stored under key. The second return value is
	// false when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close(ctx context.Context) error
}
