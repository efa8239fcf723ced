// Package storage provides the on-device key-value engine used for local
// persistence. Values are opaque byte blobs addressed by string keys; every
// write replaces the whole value for its key, so a single-key consumer gets
// atomicity at the granularity of one key.
package storage

import "context"

// Store is the key-value contract all backends implement.
//
// Get returns (nil, nil) when the key is absent; a non-nil error indicates
// an engine failure, never a miss. Set and Remove report engine failures.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
