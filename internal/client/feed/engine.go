// Package feed загружает записи с сервера постранично и сливает их в локальный кэш.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/models"
)

// DefaultLimit размер страницы по умолчанию
const DefaultLimit = 30

// PageFetcher загружает одну страницу записей с удаленного источника
type PageFetcher interface {
	FetchPage(ctx context.Context, skip, limit int) ([]models.Post, error)
}

// PageMerger сливает страницу в локальный кэш без дубликатов
type PageMerger interface {
	Merge(ctx context.Context, posts []models.Post) (int, error)
}

// State состояние курсора пагинации
type State int

const (
	StateIdle      State = iota // можно загружать следующую страницу
	StateFetching               // запрос страницы в процессе
	StateExhausted              // последняя страница получена
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Cursor is a snapshot of the pagination state.
type Cursor struct {
	Skip     int
	Limit    int
	HasMore  bool
	Fetching bool
}

// LoadResult описывает результат LoadNext
type LoadResult struct {
	Cursor  Cursor // курсор после загрузки
	Fetched int    // количество полученных с сервера записей
	Added   int    // количество новых записей в кэше
	Skipped bool   // запрос проигнорирован: загрузка уже идет или записи закончились
}

// Engine drives page-by-page loading into the cache.
//
// At most one page fetch is outstanding at a time. The page is merged
// into the cache before the in-flight flag is cleared, so a load
// requested during a fetch is a no-op instead of a race.
type Engine struct {
	fetcher  PageFetcher
	merger   PageMerger
	metadata storage.MetadataStorage
	logger   *slog.Logger

	skip       int
	limit      int
	hasMore    bool
	fetching   bool
	generation uint64 // увеличивается при Reset, чтобы отбросить курсор устаревшей загрузки

	mu sync.Mutex
}

// NewEngine creates a pagination engine.
// metadata may be nil; limit <= 0 falls back to DefaultLimit.
func NewEngine(fetcher PageFetcher, merger PageMerger, metadata storage.MetadataStorage, limit int, logger *slog.Logger) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &Engine{
		fetcher:  fetcher,
		merger:   merger,
		metadata: metadata,
		logger:   logger,
		limit:    limit,
		hasMore:  true,
	}
}

// LoadNext fetches the next page and merges it into the cache.
// It is a no-op while a fetch is in flight or after the last page.
func (e *Engine) LoadNext(ctx context.Context) (LoadResult, error) {
	e.mu.Lock()
	if e.fetching || !e.hasMore {
		cursor := e.cursorLocked()
		e.mu.Unlock()

		e.logger.Debug("Load request ignored", "fetching", cursor.Fetching, "has_more", cursor.HasMore)
		return LoadResult{Cursor: cursor, Skipped: true}, nil
	}

	e.fetching = true
	skip, limit, gen := e.skip, e.limit, e.generation
	e.mu.Unlock()

	e.logger.Debug("Fetching page", "skip", skip, "limit", limit)

	page, err := e.fetcher.FetchPage(ctx, skip, limit)
	if err != nil {
		cursor := e.finish(gen, nil, 0)
		e.logger.Warn("Failed to fetch page", "skip", skip, "limit", limit, "error", err)
		return LoadResult{Cursor: cursor}, fmt.Errorf("failed to fetch page (skip=%d): %w", skip, err)
	}

	// Сливаем страницу пока флаг fetching еще установлен
	added, err := e.merger.Merge(ctx, page)
	if err != nil {
		cursor := e.finish(gen, nil, 0)
		return LoadResult{Cursor: cursor, Fetched: len(page)}, fmt.Errorf("failed to merge page (skip=%d): %w", skip, err)
	}

	if e.metadata != nil {
		if err := e.metadata.SaveLastFetchTimestamp(ctx, time.Now().Unix()); err != nil {
			// Не прерываем загрузку из-за ошибки сохранения timestamp
			e.logger.Warn("Failed to save last fetch timestamp", "error", err)
		}
	}

	cursor := e.finish(gen, page, limit)

	e.logger.Info("Page loaded",
		"skip", skip,
		"fetched", len(page),
		"added", added,
		"has_more", cursor.HasMore)

	return LoadResult{Cursor: cursor, Fetched: len(page), Added: added}, nil
}

// finish снимает флаг fetching и, если Reset не вызывался во время загрузки,
// продвигает курсор. page == nil означает неудачную загрузку.
func (e *Engine) finish(gen uint64, page []models.Post, limit int) Cursor {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.fetching = false

	if page != nil && gen == e.generation {
		e.skip += limit
		if len(page) < limit {
			e.hasMore = false
		}
	}

	return e.cursorLocked()
}

// Reset returns the cursor to the first page.
// A fetch already in flight is not cancelled: State keeps reporting
// StateFetching and LoadNext keeps returning Skipped until it completes.
// Its page is still merged into the cache, but it no longer moves the cursor.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.skip = 0
	e.hasMore = true
	e.generation++
}

// Cursor returns a snapshot of the pagination cursor
func (e *Engine) Cursor() Cursor {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cursorLocked()
}

// State returns the current pagination state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.fetching:
		return StateFetching
	case !e.hasMore:
		return StateExhausted
	default:
		return StateIdle
	}
}

func (e *Engine) cursorLocked() Cursor {
	return Cursor{
		Skip:     e.skip,
		Limit:    e.limit,
		HasMore:  e.hasMore,
		Fetching: e.fetching,
	}
}
