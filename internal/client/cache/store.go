// Package cache хранит локальную копию записей клиента.
//
// Вся коллекция сериализуется в один JSON массив под ключом PostsKey
// и каждая мутация перезаписывает его целиком (read-modify-write).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/models"
)

// PostsKey ключ, под которым хранится сериализованная коллекция
const PostsKey = "posts"

// Store is the local post cache on top of a KVStore.
type Store struct {
	kv     storage.KVStore
	logger *slog.Logger
	mu     sync.Mutex // сериализует read-modify-write
}

// NewStore creates a cache store
func NewStore(kv storage.KVStore, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Read returns the cached posts in order.
// A missing or malformed blob is treated as an empty cache.
func (s *Store) Read(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(ctx)
}

// WriteAll replaces the cached collection.
func (s *Store) WriteAll(ctx context.Context, posts []models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(ctx, posts)
}

// Merge appends the posts whose id is not cached yet, keeping their order.
// Returns the number of appended posts. Merging the same page twice is a no-op.
func (s *Store) Merge(ctx context.Context, newPosts []models.Post) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.read(ctx)
	if err != nil {
		return 0, err
	}

	seen := mapset.NewThreadUnsafeSet[int64]()
	for _, p := range existing {
		seen.Add(p.ID)
	}

	merged := existing
	added := 0
	for _, p := range newPosts {
		// Add возвращает false, если id уже есть (в кэше или раньше в этой же странице)
		if !seen.Add(p.ID) {
			continue
		}
		merged = append(merged, p)
		added++
	}

	if added == 0 {
		return 0, nil
	}

	if err := s.write(ctx, merged); err != nil {
		return 0, err
	}

	s.logger.Debug("Merged posts into cache", "received", len(newPosts), "added", added, "total", len(merged))

	return added, nil
}

// Prepend inserts post at the head of the collection.
func (s *Store) Prepend(ctx context.Context, post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.read(ctx)
	if err != nil {
		return err
	}

	updated := make([]models.Post, 0, len(posts)+1)
	updated = append(updated, post)
	updated = append(updated, posts...)

	return s.write(ctx, updated)
}

// Update replaces the entry with the same id.
// Returns false without writing if the id is not cached.
func (s *Store) Update(ctx context.Context, post models.Post) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.read(ctx)
	if err != nil {
		return false, err
	}

	found := false
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			found = true
		}
	}

	if !found {
		return false, nil
	}

	return true, s.write(ctx, posts)
}

// Remove deletes the entry with the given id.
// Returns false without writing if the id is not cached.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.read(ctx)
	if err != nil {
		return false, err
	}

	remaining := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == len(posts) {
		return false, nil
	}

	return true, s.write(ctx, remaining)
}

// Clear drops the whole cached collection.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, PostsKey); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Get returns the cached post with the given id.
func (s *Store) Get(ctx context.Context, id int64) (models.Post, bool, error) {
	posts, err := s.Read(ctx)
	if err != nil {
		return models.Post{}, false, err
	}

	for _, p := range posts {
		if p.ID == id {
			return p, true, nil
		}
	}

	return models.Post{}, false, nil
}

// read читает и десериализует коллекцию, вызывается под s.mu
func (s *Store) read(ctx context.Context) ([]models.Post, error) {
	data, err := s.kv.Get(ctx, PostsKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Post{}, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		// Поврежденные данные считаем пустым кэшем
		s.logger.Debug("Cache blob is malformed, treating as empty", "error", err)
		return []models.Post{}, nil
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// write сериализует коллекцию целиком, вызывается под s.mu
func (s *Store) write(ctx context.Context, posts []models.Post) error {
	if posts == nil {
		posts = []models.Post{}
	}

	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to marshal posts: %w", err)
	}

	if err := s.kv.Put(ctx, PostsKey, data); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	return nil
}
