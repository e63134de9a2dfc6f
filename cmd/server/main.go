package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/postkeeper/internal/server"
	"github.com/iudanet/postkeeper/internal/server/middleware"
	"github.com/iudanet/postkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	rateLimit       = 100
	rateWindow      = time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "postkeeper-server.db", "SQLite database path")
	seed := flag.Int("seed", 150, "Number of demo posts to insert into an empty database")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *addr, *dbPath, *seed); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string, seed int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	inserted, err := store.Seed(ctx, seed)
	if err != nil {
		return fmt.Errorf("failed to seed storage: %w", err)
	}
	if inserted > 0 {
		logger.Info("Seeded demo posts", "count", inserted)
	}

	limiter := middleware.NewRateLimiter(rateLimit, rateWindow, logger)
	defer limiter.Stop()

	srv := &http.Server{
		Handler:           server.NewRouter(logger, store, limiter, Version),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return server.Run(ctx, srv, ln, shutdownTimeout, logger)
}

func printVersion() {
	fmt.Printf("PostKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
