package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/server/storage"
	"github.com/iudanet/postkeeper/internal/validation"
	"github.com/iudanet/postkeeper/pkg/api"
)

const (
	// DefaultPageLimit размер страницы, если limit не указан
	DefaultPageLimit = 30
	// MaxPageLimit максимальный размер страницы, больший limit отклоняется
	MaxPageLimit = api.MaxPageLimit

	maxBodyBytes = 1 << 20
)

//go:generate moq -out poststorage_mock.go . PostStorage

// PostStorage определяет интерфейс для работы с записями
type PostStorage interface {
	ListPosts(ctx context.Context, skip, limit int) ([]models.Post, int, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error
}

// PostsHandler handles the posts endpoints
type PostsHandler struct {
	logger  *slog.Logger
	storage PostStorage
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(logger *slog.Logger, storage PostStorage) *PostsHandler {
	return &PostsHandler{
		logger:  logger,
		storage: storage,
	}
}

// Register registers the posts routes on mux
func (h *PostsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /posts", h.List)
	mux.HandleFunc("GET /posts/{id}", h.Get)
	mux.HandleFunc("POST /posts", h.Create)
	mux.HandleFunc("PUT /posts/{id}", h.Update)
	mux.HandleFunc("DELETE /posts/{id}", h.Delete)
}

// List обрабатывает GET /posts?limit=L&skip=S
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryInt(r, "limit", DefaultPageLimit)
	if err != nil || limit <= 0 {
		h.sendError(w, "limit must be a positive integer", http.StatusBadRequest)
		return
	}
	if limit > MaxPageLimit {
		h.sendError(w, fmt.Sprintf("limit must not exceed %d", MaxPageLimit), http.StatusBadRequest)
		return
	}

	skip, err := queryInt(r, "skip", 0)
	if err != nil || skip < 0 {
		h.sendError(w, "skip must be a non-negative integer", http.StatusBadRequest)
		return
	}

	posts, total, err := h.storage.ListPosts(ctx, skip, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list posts", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.PostsPage{
		Posts: make([]api.Post, 0, len(posts)),
		Total: total,
		Skip:  skip,
		Limit: limit,
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toAPIPost(p))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Create обрабатывает POST /posts
// Нулевой id означает, что id назначает сервер
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, ok := h.decodePost(w, r)
	if !ok {
		return
	}

	created, err := h.storage.CreatePost(ctx, post)
	if err != nil {
		if errors.Is(err, storage.ErrPostAlreadyExists) {
			h.logger.WarnContext(ctx, "post already exists", slog.Int64("post_id", post.ID))
			h.sendError(w, fmt.Sprintf("post %d already exists", post.ID), http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create post", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "post created", slog.Int64("post_id", created.ID))
	h.sendJSON(w, toAPIPost(created), http.StatusCreated)
}

// Get обрабатывает GET /posts/{id}
func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	post, err := h.storage.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			h.sendError(w, fmt.Sprintf("post %d not found", id), http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get post", slog.Int64("post_id", id), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, toAPIPost(post), http.StatusOK)
}

// Update обрабатывает PUT /posts/{id}
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	post, ok := h.decodePost(w, r)
	if !ok {
		return
	}
	// id из пути главнее id в теле
	post.ID = id

	if err := h.storage.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			h.sendError(w, fmt.Sprintf("post %d not found", id), http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update post", slog.Int64("post_id", id), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "post updated", slog.Int64("post_id", id))
	h.sendJSON(w, toAPIPost(post), http.StatusOK)
}

// Delete обрабатывает DELETE /posts/{id}
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeletePost(ctx, id); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			h.sendError(w, fmt.Sprintf("post %d not found", id), http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete post", slog.Int64("post_id", id), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "post deleted", slog.Int64("post_id", id))
	h.sendJSON(w, api.DeletedPost{ID: id, IsDeleted: true}, http.StatusOK)
}

// decodePost читает и валидирует тело запроса
func (h *PostsHandler) decodePost(w http.ResponseWriter, r *http.Request) (models.Post, bool) {
	var req api.Post
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode post", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return models.Post{}, false
	}

	input, err := validation.ValidatePost(req.Title, req.Body)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return models.Post{}, false
	}
	if req.ID < 0 {
		h.sendError(w, "id must not be negative", http.StatusBadRequest)
		return models.Post{}, false
	}

	return models.Post{ID: req.ID, Title: input.Title, Body: input.Body}, true
}

func (h *PostsHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.sendError(w, "invalid post id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// sendJSON отправляет JSON ответ
func (h *PostsHandler) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	sendJSON(h.logger, w, data, statusCode)
}

// sendError отправляет JSON ответ с ошибкой
func (h *PostsHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}

func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func toAPIPost(p models.Post) api.Post {
	return api.Post{ID: p.ID, Title: p.Title, Body: p.Body}
}
