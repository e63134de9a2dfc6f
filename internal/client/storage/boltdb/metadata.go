package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/postkeeper/internal/client/storage"
)

var _ storage.MetadataStorage = (*Storage)(nil)

// keyLastFetch время последней успешной загрузки страницы, Unix секунды big-endian
var keyLastFetch = []byte("last_fetch_timestamp")

// SaveLastFetchTimestamp stores the time of the last successful page fetch
func (s *Storage) SaveLastFetchTimestamp(ctx context.Context, timestamp int64) error {
	err := s.update(bucketMetadata, func(b *bbolt.Bucket) error {
		return b.Put(keyLastFetch, binary.BigEndian.AppendUint64(nil, uint64(timestamp)))
	})
	if err != nil {
		return fmt.Errorf("failed to save last fetch timestamp: %w", err)
	}
	return nil
}

// GetLastFetchTimestamp returns the time of the last successful page fetch,
// or 0 if nothing has been fetched yet
func (s *Storage) GetLastFetchTimestamp(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.view(bucketMetadata, func(b *bbolt.Bucket) error {
		raw := b.Get(keyLastFetch)
		switch len(raw) {
		case 0:
			return nil
		case 8:
			timestamp = int64(binary.BigEndian.Uint64(raw))
			return nil
		default:
			return fmt.Errorf("%s has %d bytes: %w", keyLastFetch, len(raw), storage.ErrCorruptValue)
		}
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get last fetch timestamp: %w", err)
	}

	return timestamp, nil
}
