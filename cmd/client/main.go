package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/postkeeper/internal/client/api"
	"github.com/iudanet/postkeeper/internal/client/cache"
	"github.com/iudanet/postkeeper/internal/client/cli"
	"github.com/iudanet/postkeeper/internal/client/config"
	"github.com/iudanet/postkeeper/internal/client/controller"
	"github.com/iudanet/postkeeper/internal/client/feed"
	"github.com/iudanet/postkeeper/internal/client/iocli"
	"github.com/iudanet/postkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/postkeeper/internal/client/ui"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	serverURL := flag.String("server", config.DefaultServerURL, "Server URL")
	dbPath := flag.String("db", config.DefaultDBPath, "Path to local database")
	pageLimit := flag.Int("limit", config.DefaultPageLimit, "Posts per page")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	flag.Usage = cli.PrintUsage
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	// Флаги перекрывают файл и окружение, только если заданы явно
	var overrides config.Flags
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			overrides.ServerURL = serverURL
		case "db":
			overrides.DBPath = dbPath
		case "limit":
			overrides.PageLimit = pageLimit
		case "log-level":
			overrides.LogLevel = logLevel
		}
	})

	cfg, err := config.Load(*configPath, overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, command string, args []string) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	// Создаем контекст, отменяемый по Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.ServerURL, cfg.HTTPTimeout)

	store := cache.NewStore(boltStorage, logger)
	engine := feed.NewEngine(apiClient, store, boltStorage, cfg.PageLimit, logger)

	io := iocli.NewStdio()
	height := ui.TerminalHeight(int(os.Stdout.Fd()), cfg.ViewportHeight)
	ctrl := controller.New(store, apiClient, engine, ui.NewRenderer(io), ui.NewViewport(height, cfg.ScrollThreshold), logger)

	logger.Debug("Client started",
		"server", cfg.ServerURL,
		"db", cfg.DBPath,
		"page_limit", cfg.PageLimit,
		"viewport_height", height)

	return cli.New(io, ctrl, store, boltStorage, cfg.ServerURL).Run(ctx, command, args)
}

func printVersion() {
	fmt.Printf("PostKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
