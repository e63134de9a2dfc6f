package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/postkeeper/internal/client/storage"
)

func TestStorage_PutGet(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "posts")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Put(ctx, "posts", []byte(`[{"id":1}]`)))

	value, err := store.Get(ctx, "posts")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(value))

	// Put заменяет предыдущее значение целиком
	require.NoError(t, store.Put(ctx, "posts", []byte(`[]`)))
	value, err = store.Get(ctx, "posts")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))
}

func TestStorage_Delete(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "posts", []byte("x")))
	require.NoError(t, store.Delete(ctx, "posts"))

	_, err := store.Get(ctx, "posts")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Удаление отсутствующего ключа не ошибка
	assert.NoError(t, store.Delete(ctx, "missing"))
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "posts", []byte("persisted")))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	value, err := store.Get(ctx, "posts")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(value))
}

func TestStorage_ClosedDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "closed.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Get(ctx, "posts")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Put(ctx, "posts", []byte("x"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Delete(ctx, "posts")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
