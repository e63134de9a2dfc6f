// Package server собирает HTTP сервер с записями: маршруты, middleware и жизненный цикл.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/postkeeper/internal/server/handlers"
	"github.com/iudanet/postkeeper/internal/server/middleware"
)

// Storage хранилище, которое нужно серверу
type Storage interface {
	handlers.PostStorage
	handlers.Pinger
}

// NewRouter registers the routes and wraps them with middleware.
// Order from the outside: request id, recovery, logging, rate limit.
func NewRouter(logger *slog.Logger, store Storage, limiter *middleware.RateLimiter, version string) http.Handler {
	mux := http.NewServeMux()

	handlers.NewPostsHandler(logger, store).Register(mux)
	mux.HandleFunc("GET /health", handlers.NewHealthHandler(logger, store, version).Health)

	var h http.Handler = mux
	h = limiter.Middleware(h)
	h = middleware.LoggingWithSkip(logger, []string{"/health"})(h)
	h = middleware.RecoveryMiddleware(logger)(h)
	h = middleware.RequestIDMiddleware(h)

	return h
}

// Run serves srv on ln until ctx is cancelled, then shuts it down gracefully.
// A serve error cancels the shutdown wait and is returned.
func Run(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
