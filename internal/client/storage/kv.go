package storage

import "context"

//go:generate moq -out kvstore_mock.go . KVStore

// KVStore defines a persistent string key-value store on client.
// Values are opaque blobs, the store never interprets them.
type KVStore interface {
	// Get returns the value stored under key
	// Returns ErrKeyNotFound if nothing is stored
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the key, missing keys are not an error
	Delete(ctx context.Context, key string) error
}
