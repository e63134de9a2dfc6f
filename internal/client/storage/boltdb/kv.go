package boltdb

import (
	"bytes"
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/postkeeper/internal/client/storage"
)

var _ storage.KVStore = (*Storage)(nil)

// Get returns a copy of the value stored under key in the cache bucket
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.view(bucketCache, func(b *bbolt.Bucket) error {
		data := b.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}
		// Срез валиден только внутри транзакции
		value = bytes.Clone(data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Put replaces the value stored under key in the cache bucket
func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	err := s.update(bucketCache, func(b *bbolt.Bucket) error {
		return b.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the cache bucket, missing keys are ignored
func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.update(bucketCache, func(b *bbolt.Bucket) error {
		return b.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
