package storage

import (
	"context"

	"github.com/iudanet/postkeeper/internal/models"
)

// PostStorage defines interface for post persistence
type PostStorage interface {
	// ListPosts returns up to limit posts ordered by id, starting at skip,
	// and the total number of stored posts
	ListPosts(ctx context.Context, skip, limit int) ([]models.Post, int, error)

	// GetPost returns a single post
	// Returns ErrPostNotFound if post doesn't exist
	GetPost(ctx context.Context, id int64) (models.Post, error)

	// CreatePost stores a new post. Zero id means the storage assigns one.
	// Returns ErrPostAlreadyExists if the id is taken
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// UpdatePost replaces title and body of an existing post
	// Returns ErrPostNotFound if post doesn't exist
	UpdatePost(ctx context.Context, post models.Post) error

	// DeletePost removes the post
	// Returns ErrPostNotFound if post doesn't exist
	DeletePost(ctx context.Context, id int64) error
}
