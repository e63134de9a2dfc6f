package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter ограничивает частоту запросов по ключу (IP клиента).
// Каждый ключ получает token bucket емкостью rate, который равномерно
// пополняется до полного за window.
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	now      func() time.Time
	cleanupC chan struct{}
	rate     int
	window   time.Duration
	mu       sync.RWMutex
	stopOnce sync.Once
}

type bucket struct {
	last   time.Time // момент последнего пересчета токенов
	tokens float64
	mu     sync.Mutex
}

// NewRateLimiter creates a limiter allowing rate requests per window
// for each client and starts the idle bucket cleanup. Call Stop when done.
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		logger:   logger,
		now:      time.Now,
		cleanupC: make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// cleanup раз в window удаляет полные (неактивные) buckets
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropIdle()
		case <-rl.cleanupC:
			return
		}
	}
}

// dropIdle удаляет buckets, которые успели пополниться до полного:
// такой bucket ничем не отличается от нового
func (rl *RateLimiter) dropIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		b.mu.Lock()
		if now.Sub(b.last) >= rl.window {
			delete(rl.buckets, key)
		}
		b.mu.Unlock()
	}
}

// Stop stops the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.cleanupC)
	})
}

// Allow reports whether one more request for key fits into the limit
func (rl *RateLimiter) Allow(key string) bool {
	ok, _ := rl.take(key)
	return ok
}

// take забирает токен; при отказе возвращает время до появления следующего
func (rl *RateLimiter) take(key string) (bool, time.Duration) {
	b := rl.bucketFor(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := rl.now()
	rate, window := float64(rl.rate), float64(rl.window)
	b.tokens = math.Min(rate, b.tokens+float64(now.Sub(b.last))*rate/window)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	return false, time.Duration(math.Ceil((1 - b.tokens) * window / rate))
}

func (rl *RateLimiter) bucketFor(key string) *bucket {
	rl.mu.RLock()
	b, ok := rl.buckets[key]
	rl.mu.RUnlock()
	if ok {
		return b
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Повторная проверка: bucket мог создать параллельный запрос
	if b, ok = rl.buckets[key]; !ok {
		b = &bucket{tokens: float64(rl.rate), last: rl.now()}
		rl.buckets[key] = b
	}
	return b
}

// Middleware rejects requests over the limit with 429 and Retry-After
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := getClientIP(r)

		ok, wait := rl.take(key)
		if !ok {
			rl.logger.Warn("Rate limit exceeded",
				"request_id", RequestID(r.Context()),
				"ip", key,
				"method", r.Method,
				"path", r.URL.Path,
				"retry_after", wait,
			)

			w.Header().Set("Retry-After", retryAfterSeconds(wait))
			writeError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// retryAfterSeconds округляет ожидание вверх до целых секунд, минимум 1
func retryAfterSeconds(wait time.Duration) string {
	seconds := int(math.Ceil(wait.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}

// getClientIP возвращает IP клиента: первый адрес X-Forwarded-For,
// затем X-Real-IP, затем хост из RemoteAddr
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Порт у каждого соединения свой, лимит считаем по хосту
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
