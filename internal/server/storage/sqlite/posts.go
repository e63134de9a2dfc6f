package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/server/storage"
)

var _ storage.PostStorage = (*Storage)(nil)

// ListPosts returns a page of posts ordered by id and the total count
func (s *Storage) ListPosts(ctx context.Context, skip, limit int) ([]models.Post, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, body
		FROM posts
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, limit)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, total, nil
}

// CreatePost stores a new post. Zero id lets SQLite assign the next rowid.
func (s *Storage) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	now := time.Now().Unix()

	var (
		result sql.Result
		err    error
	)
	if post.ID == 0 {
		result, err = s.db.ExecContext(ctx, `
			INSERT INTO posts (title, body, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`, post.Title, post.Body, now, now)
	} else {
		result, err = s.db.ExecContext(ctx, `
			INSERT INTO posts (id, title, body, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, post.ID, post.Title, post.Body, now, now)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return models.Post{}, fmt.Errorf("post %d: %w", post.ID, storage.ErrPostAlreadyExists)
		}
		return models.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	if post.ID == 0 {
		id, err := result.LastInsertId()
		if err != nil {
			return models.Post{}, fmt.Errorf("failed to get post id: %w", err)
		}
		post.ID = id
	}

	return post, nil
}

// UpdatePost replaces title and body of an existing post
func (s *Storage) UpdatePost(ctx context.Context, post models.Post) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE posts
		SET title = ?, body = ?, updated_at = ?
		WHERE id = ?
	`, post.Title, post.Body, time.Now().Unix(), post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return requireAffected(result, post.ID)
}

// DeletePost removes the post
func (s *Storage) DeletePost(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return requireAffected(result, id)
}

// GetPost retrieves a single post by id
func (s *Storage) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var p models.Post
	err := s.db.QueryRowContext(ctx, `SELECT id, title, body FROM posts WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, fmt.Errorf("post %d: %w", id, storage.ErrPostNotFound)
		}
		return models.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

func requireAffected(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("post %d: %w", id, storage.ErrPostNotFound)
	}
	return nil
}

// isUniqueViolation проверяет нарушение PRIMARY KEY/UNIQUE ограничения
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "PRIMARY KEY constraint failed")
}
