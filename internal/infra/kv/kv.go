// Package kv defines the string-keyed storage port backing the reservation
// and notification collections, with interchangeable in-memory, Redis and
// Postgres adapters.
package kv

import "context"

// Store is a synchronous key-value port. Values are opaque byte blobs; the
// collections written through it are always replaced whole.
type Store interface {
	// Get returns the value for key. found is false when the key has never
	// been written, which is distinct from a storage failure.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put unconditionally overwrites the value for key.
	Put(ctx context.Context, key string, value []byte) error

	// CompareAndSwap writes next only if the stored value still equals
	// expected. A nil expected asserts the key is absent. A lost race is
	// reported as a CONFLICT repository error so the caller can retry or
	// surface it.
	CompareAndSwap(ctx context.Context, key string, expected, next []byte) error
}
