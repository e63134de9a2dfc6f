// Package controller связывает ввод пользователя с кэшем, удаленным API,
// движком пагинации и отображением.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/postkeeper/internal/client/feed"
	"github.com/iudanet/postkeeper/internal/client/ui"
	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/validation"
)

// ErrPostNotFound возвращается, если записи с таким ID нет в кэше
var ErrPostNotFound = errors.New("post not found")

// PostCache локальный кэш записей
type PostCache interface {
	Read(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int64) (models.Post, bool, error)
	Prepend(ctx context.Context, post models.Post) error
	Update(ctx context.Context, post models.Post) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

// RemoteWriter отправляет изменения на сервер
type RemoteWriter interface {
	CreatePost(ctx context.Context, post models.Post) error
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error
}

// Pager движок постраничной загрузки
type Pager interface {
	LoadNext(ctx context.Context) (feed.LoadResult, error)
	Reset()
	Cursor() feed.Cursor
}

// Operation тип изменения
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// MutationResult описывает результат изменения.
// Локальное изменение уже применено; RemoteErr содержит ошибку
// отправки на сервер, если она произошла.
type MutationResult struct {
	RemoteErr error
	Op        Operation
	Post      models.Post
	Applied   bool // false, если изменение было no-op (например, удаление отсутствующей записи)
}

// Controller handles user interactions.
// It owns the edit marker, the current search query and the viewport.
type Controller struct {
	cache    PostCache
	remote   RemoteWriter
	pager    Pager
	renderer *ui.Renderer
	logger   *slog.Logger
	now      func() time.Time

	viewport  ui.Viewport
	editingID int64
	editing   bool
	query     string

	mu sync.Mutex
}

// New creates a controller.
func New(cache PostCache, remote RemoteWriter, pager Pager, renderer *ui.Renderer, viewport ui.Viewport, logger *slog.Logger) *Controller {
	return &Controller{
		cache:    cache,
		remote:   remote,
		pager:    pager,
		renderer: renderer,
		viewport: viewport,
		logger:   logger,
		now:      time.Now,
	}
}

// Load performs the initial load: reset, fetch the first page, render.
func (c *Controller) Load(ctx context.Context) (feed.LoadResult, error) {
	c.Reset()
	return c.LoadMore(ctx)
}

// LoadMore requests the next page and re-renders the current view.
// The cache is rendered even when the fetch fails.
func (c *Controller) LoadMore(ctx context.Context) (feed.LoadResult, error) {
	result, loadErr := c.pager.LoadNext(ctx)

	if err := c.rerender(ctx); err != nil {
		return result, err
	}

	return result, loadErr
}

// Reset clears rendered content and rewinds pagination
func (c *Controller) Reset() {
	c.pager.Reset()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.renderer.Clear()
	c.viewport.ScrollToTop()
}

// Save creates a new post, or updates the post being edited.
// Blank title or body aborts before any cache or remote mutation.
func (c *Controller) Save(ctx context.Context, title, body string) (*MutationResult, error) {
	input, err := validation.ValidatePost(title, body)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	editingID, editing := c.editingID, c.editing
	c.mu.Unlock()

	var result *MutationResult
	if editing {
		result, err = c.update(ctx, models.Post{ID: editingID, Title: input.Title, Body: input.Body})
	} else {
		result, err = c.create(ctx, input)
	}
	if err != nil {
		return nil, err
	}

	if err := c.rerender(ctx); err != nil {
		return result, err
	}

	return result, nil
}

func (c *Controller) create(ctx context.Context, input validation.PostInput) (*MutationResult, error) {
	posts, err := c.cache.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	taken := make(map[int64]struct{}, len(posts))
	for _, p := range posts {
		taken[p.ID] = struct{}{}
	}

	post := models.Post{
		ID: models.NewLocalID(c.now(), func(id int64) bool {
			_, ok := taken[id]
			return ok
		}),
		Title: input.Title,
		Body:  input.Body,
	}

	if err := c.cache.Prepend(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to save post locally: %w", err)
	}

	result := &MutationResult{Op: OpCreate, Post: post, Applied: true}
	result.RemoteErr = c.syncRemote(OpCreate, post.ID, func() error {
		return c.remote.CreatePost(ctx, post)
	})

	return result, nil
}

func (c *Controller) update(ctx context.Context, post models.Post) (*MutationResult, error) {
	updated, err := c.cache.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update post locally: %w", err)
	}

	// Маркер редактирования снимается в любом случае
	c.CancelEdit()

	if !updated {
		// Запись удалили, пока она редактировалась
		return nil, fmt.Errorf("post %d: %w", post.ID, ErrPostNotFound)
	}

	result := &MutationResult{Op: OpUpdate, Post: post, Applied: true}
	result.RemoteErr = c.syncRemote(OpUpdate, post.ID, func() error {
		return c.remote.UpdatePost(ctx, post)
	})

	return result, nil
}

// BeginEdit marks the post as being edited and returns it to pre-fill the form
func (c *Controller) BeginEdit(ctx context.Context, id int64) (models.Post, error) {
	post, ok, err := c.cache.Get(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to read cache: %w", err)
	}
	if !ok {
		return models.Post{}, fmt.Errorf("post %d: %w", id, ErrPostNotFound)
	}

	c.mu.Lock()
	c.editingID = id
	c.editing = true
	c.mu.Unlock()

	return post, nil
}

// CancelEdit clears the edit marker
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.editingID = 0
	c.editing = false
}

// EditingID returns the id of the post being edited
func (c *Controller) EditingID() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.editingID, c.editing
}

// Delete removes the post locally and remotely, then re-renders.
// confirm may be nil; returning false cancels the deletion.
// Unknown ids are a local no-op and are not sent to the server.
func (c *Controller) Delete(ctx context.Context, id int64, confirm func(models.Post) bool) (*MutationResult, error) {
	post, ok, err := c.cache.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	if !ok {
		return &MutationResult{Op: OpDelete, Post: models.Post{ID: id}}, nil
	}

	if confirm != nil && !confirm(post) {
		return &MutationResult{Op: OpDelete, Post: post}, nil
	}

	removed, err := c.cache.Remove(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete post locally: %w", err)
	}

	// Удаленную запись больше нельзя редактировать
	if editingID, editing := c.EditingID(); editing && editingID == id {
		c.CancelEdit()
	}

	result := &MutationResult{Op: OpDelete, Post: post, Applied: removed}
	if removed {
		result.RemoteErr = c.syncRemote(OpDelete, id, func() error {
			return c.remote.DeletePost(ctx, id)
		})
	}

	if err := c.rerender(ctx); err != nil {
		return result, err
	}

	return result, nil
}

// Search renders the cached posts matching query and returns them.
// It does not touch the remote source or the pagination cursor.
func (c *Controller) Search(ctx context.Context, query string) ([]models.Post, error) {
	c.mu.Lock()
	c.query = query
	c.viewport.ScrollToTop()
	c.mu.Unlock()

	posts, err := c.cache.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	filtered := models.FilterPosts(posts, query)

	c.mu.Lock()
	c.renderer.Render(filtered)
	c.mu.Unlock()

	return filtered, nil
}

// Query returns the active search query
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.query
}

// Scroll moves the viewport by lines. When the window gets near the
// bottom of the content, the next page is requested. Returns whether
// a page was actually fetched.
func (c *Controller) Scroll(ctx context.Context, lines int) (bool, error) {
	c.mu.Lock()
	height := c.renderer.Height()
	c.viewport.ScrollBy(lines, height)
	near := lines > 0 && c.viewport.NearBottom(height)
	c.mu.Unlock()

	if !near {
		return false, nil
	}

	result, err := c.LoadMore(ctx)
	if err != nil {
		return false, err
	}

	return !result.Skipped, nil
}

// Draw writes the visible part of the current view
func (c *Controller) Draw() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.renderer.Draw(c.viewport)
}

// DrawAll writes the whole current view
func (c *Controller) DrawAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.renderer.DrawAll()
}

// Viewport returns a copy of the current viewport
func (c *Controller) Viewport() ui.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.viewport
}

// rerender проецирует кэш (с учетом активного поиска) на экран
func (c *Controller) rerender(ctx context.Context) error {
	posts, err := c.cache.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cache: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	height := c.renderer.Render(models.FilterPosts(posts, c.query))
	c.viewport.ScrollBy(0, height)

	return nil
}

// syncRemote отправляет изменение на сервер после локального применения.
// Ошибка логируется и возвращается, но не отменяет локальное изменение.
func (c *Controller) syncRemote(op Operation, id int64, call func() error) error {
	if err := call(); err != nil {
		c.logger.Warn("Remote sync failed, keeping local change",
			"op", string(op),
			"post_id", id,
			"error", err)
		return err
	}

	c.logger.Debug("Remote sync completed", "op", string(op), "post_id", id)
	return nil
}
