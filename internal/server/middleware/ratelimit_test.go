package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/postkeeper/pkg/api"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("success"))
	})
}

func doRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// fakeClock ручное время для детерминированных тестов
type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestNewRateLimiter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	limiter := NewRateLimiter(10, time.Minute, logger)
	defer limiter.Stop()

	assert.Equal(t, 10, limiter.rate)
	assert.Equal(t, time.Minute, limiter.window)
	assert.NotNil(t, limiter.buckets)
}

func TestRateLimiter_Allow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Requests over limit are denied", func(t *testing.T) {
		limiter := NewRateLimiter(3, time.Minute, logger)
		defer limiter.Stop()

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("192.168.1.2"), fmt.Sprintf("request %d should be allowed", i+1))
		}
		assert.False(t, limiter.Allow("192.168.1.2"))
	})

	t.Run("Tokens refill gradually", func(t *testing.T) {
		clock := newFakeClock()
		limiter := NewRateLimiter(2, time.Minute, logger)
		limiter.now = clock.Now
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))

		// Один токен появляется за window/rate
		clock.Advance(20 * time.Second)
		assert.False(t, limiter.Allow("10.0.0.1"))
		clock.Advance(20 * time.Second)
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))

		// Запас не превышает rate даже после долгого простоя
		clock.Advance(time.Hour)
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("Wait reports time to next token", func(t *testing.T) {
		clock := newFakeClock()
		limiter := NewRateLimiter(3, time.Minute, logger)
		limiter.now = clock.Now
		defer limiter.Stop()

		for i := 0; i < 3; i++ {
			ok, wait := limiter.take("10.0.0.2")
			require.True(t, ok)
			assert.Zero(t, wait)
		}

		ok, wait := limiter.take("10.0.0.2")
		assert.False(t, ok)
		assert.Equal(t, 20*time.Second, wait)

		clock.Advance(15 * time.Second)
		_, wait = limiter.take("10.0.0.2")
		assert.Equal(t, 5*time.Second, wait)
	})

	t.Run("Concurrent first requests share one bucket", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute, logger)
		defer limiter.Stop()

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("10.0.0.9") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, allowed)
	})
}

func TestRateLimiter_StopTwice(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NotPanics(t, func() {
		limiter.Stop()
		limiter.Stop()
	})
}

func TestRateLimiter_Middleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Requests over limit are blocked with 429", func(t *testing.T) {
		limiter := NewRateLimiter(3, time.Minute, logger)
		limiter.now = newFakeClock().Now
		defer limiter.Stop()
		handler := limiter.Middleware(okHandler())

		for i := 0; i < 3; i++ {
			w := doRequest(handler, "192.168.1.2:12345")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "success", w.Body.String())
		}

		w := doRequest(handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, "20", w.Header().Get("Retry-After"))

		var resp api.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "rate_limited", resp.Error)
		assert.Contains(t, resp.Message, "rate limit exceeded")
	})

	t.Run("Different ports of one host share the limit", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute, logger)
		defer limiter.Stop()
		handler := limiter.Middleware(okHandler())

		assert.Equal(t, http.StatusOK, doRequest(handler, "192.168.1.1:1000").Code)
		assert.Equal(t, http.StatusOK, doRequest(handler, "192.168.1.1:1001").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "192.168.1.1:1002").Code)

		// Другой IP имеет свой независимый лимит
		assert.Equal(t, http.StatusOK, doRequest(handler, "192.168.1.2:1000").Code)
	})

	t.Run("Logs exceeded requests", func(t *testing.T) {
		var logBuf strings.Builder
		limiter := NewRateLimiter(1, time.Minute, slog.New(slog.NewTextHandler(&logBuf, nil)))
		defer limiter.Stop()
		handler := limiter.Middleware(okHandler())

		doRequest(handler, "10.1.1.1:5000")
		assert.Empty(t, logBuf.String())

		doRequest(handler, "10.1.1.1:5000")
		assert.Contains(t, logBuf.String(), "Rate limit exceeded")
		assert.Contains(t, logBuf.String(), "ip=10.1.1.1")
	})
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xRealIP    string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For with single IP",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1",
			expectedIP: "192.168.1.1",
		},
		{
			name:       "X-Forwarded-For with multiple IPs",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1, 10.0.0.2, 10.0.0.3",
			expectedIP: "192.168.1.1", // Первый IP
		},
		{
			name:       "X-Real-IP when X-Forwarded-For is empty",
			remoteAddr: "10.0.0.1:12345",
			xRealIP:    "192.168.2.1",
			expectedIP: "192.168.2.1",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.3.1:54321",
			expectedIP: "192.168.3.1",
		},
		{
			name:       "IPv6 RemoteAddr",
			remoteAddr: "[::1]:54321",
			expectedIP: "::1",
		},
		{
			name:       "RemoteAddr that is not host:port",
			remoteAddr: "pipe",
			expectedIP: "pipe",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1",
			xRealIP:    "192.168.2.1",
			expectedIP: "192.168.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/posts", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}

			assert.Equal(t, tt.expectedIP, getClientIP(req))
		})
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, "1", retryAfterSeconds(0))
	assert.Equal(t, "1", retryAfterSeconds(300*time.Millisecond))
	assert.Equal(t, "2", retryAfterSeconds(1500*time.Millisecond))
	assert.Equal(t, "20", retryAfterSeconds(20*time.Second))
}

func TestRateLimiter_DropIdle(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimiter(10, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	limiter.now = clock.Now
	defer limiter.Stop()

	limiter.Allow("192.168.1.1")
	clock.Advance(30 * time.Second)
	limiter.Allow("192.168.1.2")
	clock.Advance(30 * time.Second)

	limiter.dropIdle()

	// Первый bucket уже полный, второй еще пополняется
	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	assert.Len(t, limiter.buckets, 1)
	assert.Contains(t, limiter.buckets, "192.168.1.2")
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := NewRateLimiter(10, 100*time.Millisecond, logger)
	defer limiter.Stop()

	limiter.Allow("192.168.1.1")
	limiter.Allow("192.168.1.2")
	limiter.Allow("192.168.1.3")

	limiter.mu.RLock()
	assert.Len(t, limiter.buckets, 3)
	limiter.mu.RUnlock()

	// Ждем, пока тик очистки удалит пополнившиеся buckets
	assert.Eventually(t, func() bool {
		limiter.mu.RLock()
		defer limiter.mu.RUnlock()
		return len(limiter.buckets) == 0
	}, time.Second, 20*time.Millisecond, "old buckets should be cleaned up")
}
