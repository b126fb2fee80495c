// Package store implements the durable key-value store backing the client
// session. Only the session manager writes to it; it holds exactly the
// persisted credentials (token and serialized user).
package store

import "context"

// Store is a minimal durable key-value contract. Get returns (nil, nil)
// when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
