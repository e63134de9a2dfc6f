// Package config собирает настройки клиента.
// Приоритет источников: флаги > переменные окружения > YAML файл > значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/postkeeper/internal/client/feed"
	"github.com/iudanet/postkeeper/internal/client/ui"
	"github.com/iudanet/postkeeper/pkg/api"
)

// Environment variables
const (
	EnvServerURL = "POSTKEEPER_SERVER"
	EnvDBPath    = "POSTKEEPER_DB"
	EnvPageLimit = "POSTKEEPER_LIMIT"
	EnvLogLevel  = "POSTKEEPER_LOG_LEVEL"
)

// Defaults
const (
	DefaultServerURL       = "https://dummyjson.com"
	DefaultDBPath          = "postkeeper.db"
	DefaultPageLimit       = feed.DefaultLimit
	DefaultScrollThreshold = ui.DefaultScrollThreshold
	DefaultViewportHeight  = ui.DefaultViewportHeight
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultLogLevel        = "info"
)

// ErrInvalidConfig возвращается при невалидных значениях настроек
var ErrInvalidConfig = errors.New("invalid config")

// Config holds client settings
type Config struct {
	ServerURL       string        `yaml:"server_url"`
	DBPath          string        `yaml:"db_path"`
	LogLevel        string        `yaml:"log_level"`
	PageLimit       int           `yaml:"page_limit"`
	ScrollThreshold int           `yaml:"scroll_threshold"`
	ViewportHeight  int           `yaml:"viewport_height"`
	HTTPTimeout     time.Duration `yaml:"http_timeout"`
}

// Flags holds command-line overrides. Nil fields were not set.
type Flags struct {
	ServerURL *string
	DBPath    *string
	LogLevel  *string
	PageLimit *int
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ServerURL:       DefaultServerURL,
		DBPath:          DefaultDBPath,
		LogLevel:        DefaultLogLevel,
		PageLimit:       DefaultPageLimit,
		ScrollThreshold: DefaultScrollThreshold,
		ViewportHeight:  DefaultViewportHeight,
		HTTPTimeout:     DefaultHTTPTimeout,
	}
}

// Load builds the configuration from defaults, the YAML file at path
// (skipped when path is empty), the environment and flags, then validates it.
func Load(path string, flags Flags) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	cfg.applyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Поля, отсутствующие в файле, сохраняют значения по умолчанию
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvServerURL); ok && v != "" {
		c.ServerURL = v
	}
	if v, ok := lookup(EnvDBPath); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPageLimit); ok && v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvPageLimit, v)
		}
		c.PageLimit = limit
	}
	return nil
}

func (c *Config) applyFlags(f Flags) {
	if f.ServerURL != nil {
		c.ServerURL = *f.ServerURL
	}
	if f.DBPath != nil {
		c.DBPath = *f.DBPath
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.PageLimit != nil {
		c.PageLimit = *f.PageLimit
	}
}

// Validate checks the settings
func (c Config) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return fmt.Errorf("%w: server_url is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: db_path is required", ErrInvalidConfig)
	}
	if c.PageLimit <= 0 {
		return fmt.Errorf("%w: page_limit must be positive, got %d", ErrInvalidConfig, c.PageLimit)
	}
	// Сервер урезает или отклоняет большие страницы, и короткая страница
	// была бы принята за последнюю
	if c.PageLimit > api.MaxPageLimit {
		return fmt.Errorf("%w: page_limit must not exceed %d, got %d", ErrInvalidConfig, api.MaxPageLimit, c.PageLimit)
	}
	if c.ScrollThreshold < 0 {
		return fmt.Errorf("%w: scroll_threshold must not be negative, got %d", ErrInvalidConfig, c.ScrollThreshold)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http_timeout must be positive, got %s", ErrInvalidConfig, c.HTTPTimeout)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
