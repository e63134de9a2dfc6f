package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func TestNew_RunsMigrations(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var name string
	err := s.db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'posts'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "posts", name)

	version, err := s.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNew_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	_, err = s.Seed(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Повторное открытие: миграции не падают, данные на месте
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	_, total, err := s.ListPosts(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NoError(t, s.Ping(ctx))
}

func TestNew_InvalidPath(t *testing.T) {
	s, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "server.db"))
	assert.Error(t, err)
	assert.Nil(t, s)
}
