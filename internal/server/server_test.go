package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/postkeeper/internal/client/api"
	"github.com/iudanet/postkeeper/internal/client/cache"
	"github.com/iudanet/postkeeper/internal/client/feed"
	"github.com/iudanet/postkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/server/middleware"
	"github.com/iudanet/postkeeper/internal/server/storage/sqlite"
	wireapi "github.com/iudanet/postkeeper/pkg/api"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer поднимает сервер поверх in-memory SQLite с seed записями
func newTestServer(t *testing.T, seed int) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	_, err = store.Seed(ctx, seed)
	require.NoError(t, err)

	logger := discardLogger()
	limiter := middleware.NewRateLimiter(1000, time.Minute, logger)
	t.Cleanup(limiter.Stop)

	ts := httptest.NewServer(NewRouter(logger, store, limiter, "test"))
	t.Cleanup(ts.Close)

	return ts
}

func TestRouter_ClientRoundTrip(t *testing.T) {
	ts := newTestServer(t, 35)
	ctx := context.Background()
	client := api.NewClient(ts.URL, 5*time.Second)

	page, err := client.FetchPage(ctx, 30, 30)
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, int64(31), page[0].ID)

	post := models.Post{ID: 1700000000000, Title: "Offline note", Body: "made locally"}
	require.NoError(t, client.CreatePost(ctx, post))

	resp, err := http.Get(fmt.Sprintf("%s/posts/%d", ts.URL, post.ID))
	require.NoError(t, err)
	var stored wireapi.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, wireapi.Post{ID: post.ID, Title: post.Title, Body: post.Body}, stored)

	post.Body = "edited"
	require.NoError(t, client.UpdatePost(ctx, post))

	page, err = client.FetchPage(ctx, 35, 30)
	require.NoError(t, err)
	assert.Equal(t, []models.Post{post}, page)

	require.NoError(t, client.DeletePost(ctx, post.ID))

	err = client.DeletePost(ctx, post.ID)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	err = client.UpdatePost(ctx, models.Post{ID: 999, Title: "a", Body: "b"})
	var netErr *api.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusNotFound, netErr.StatusCode)
}

func TestRouter_FeedEngineAgainstServer(t *testing.T) {
	ts := newTestServer(t, 35)
	ctx := context.Background()

	bolt, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer bolt.Close()

	logger := discardLogger()
	store := cache.NewStore(bolt, logger)
	engine := feed.NewEngine(api.NewClient(ts.URL, 5*time.Second), store, bolt, 30, logger)

	first, err := engine.LoadNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, first.Added)
	assert.True(t, first.Cursor.HasMore)

	second, err := engine.LoadNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Added)
	assert.False(t, second.Cursor.HasMore)

	third, err := engine.LoadNext(ctx)
	require.NoError(t, err)
	assert.True(t, third.Skipped)

	posts, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 35)

	// Повторная загрузка после reset не дублирует записи
	engine.Reset()
	_, err = engine.LoadNext(ctx)
	require.NoError(t, err)
	posts, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 35)
}

// newTestEngine собирает клиентский движок загрузки поверх bbolt кэша
func newTestEngine(t *testing.T, serverURL string, limit int) (*feed.Engine, *cache.Store) {
	t.Helper()

	bolt, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = bolt.Close()
	})

	logger := discardLogger()
	store := cache.NewStore(bolt, logger)
	return feed.NewEngine(api.NewClient(serverURL, 5*time.Second), store, bolt, limit, logger), store
}

func TestRouter_FeedEngineLargestPage(t *testing.T) {
	ts := newTestServer(t, 250)
	ctx := context.Background()
	engine, store := newTestEngine(t, ts.URL, wireapi.MaxPageLimit)

	// 100 + 100 + 50: только последняя страница короче limit
	var fetched []int
	for engine.Cursor().HasMore {
		result, err := engine.LoadNext(ctx)
		require.NoError(t, err)
		fetched = append(fetched, result.Fetched)
	}
	assert.Equal(t, []int{100, 100, 50}, fetched)

	posts, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 250)
}

func TestRouter_FeedEngineOversizedLimit(t *testing.T) {
	ts := newTestServer(t, 250)
	ctx := context.Background()
	engine, store := newTestEngine(t, ts.URL, wireapi.MaxPageLimit+50)

	// Сервер отклоняет limit сверх максимума, а не отдает урезанную страницу,
	// которую движок принял бы за последнюю
	result, err := engine.LoadNext(ctx)
	require.Error(t, err)
	var netErr *api.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusBadRequest, netErr.StatusCode)

	assert.True(t, result.Cursor.HasMore)
	assert.Equal(t, 0, result.Cursor.Skip)
	assert.Equal(t, feed.StateIdle, engine.State())

	posts, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestRouter_HealthAndRequestID(t *testing.T) {
	ts := newTestServer(t, 0)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestRouter_RateLimited(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	logger := discardLogger()
	limiter := middleware.NewRateLimiter(2, time.Minute, logger)
	defer limiter.Stop()

	handler := NewRouter(logger, store, limiter, "test")

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRun_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		ReadHeaderTimeout: time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, srv, ln, time.Second, discardLogger())
	}()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ServeError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	// Закрытый listener: Serve сразу возвращает ошибку
	require.NoError(t, ln.Close())

	err = Run(context.Background(), &http.Server{ReadHeaderTimeout: time.Second}, ln, time.Second, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server failed")
}
