// Package boltdb хранит кэш записей и метаданные клиента в одном файле bbolt.
package boltdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/postkeeper/internal/client/storage"
)

var (
	bucketCache    = []byte("cache")    // сериализованная коллекция записей
	bucketMetadata = []byte("metadata") // служебные значения движка загрузки

	allBuckets = [][]byte{bucketCache, bucketMetadata}
)

// openTimeout ожидание блокировки файла другим процессом клиента
const openTimeout = time.Second

// Storage implements storage.KVStore and storage.MetadataStorage on bbolt.
// It is safe for concurrent use; Close waits for running transactions.
type Storage struct {
	db *bbolt.DB
	mu sync.RWMutex
}

// New opens (or creates) the database file at dbPath and prepares the buckets.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb %s: %w", dbPath, err)
	}

	if err := db.Update(createBuckets(allBuckets...)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database. Repeated calls are no-ops.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

func createBuckets(names ...[]byte) func(tx *bbolt.Tx) error {
	return func(tx *bbolt.Tx) error {
		for _, name := range names {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	}
}

// view выполняет fn в read-only транзакции над bucket
func (s *Storage) view(name []byte, fn func(b *bbolt.Bucket) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(name)
		if b == nil {
			return fmt.Errorf("%s: %w", name, storage.ErrBucketNotFound)
		}
		return fn(b)
	})
}

// update выполняет fn в транзакции записи над bucket
func (s *Storage) update(name []byte, fn func(b *bbolt.Bucket) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(name)
		if b == nil {
			return fmt.Errorf("%s: %w", name, storage.ErrBucketNotFound)
		}
		return fn(b)
	})
}
