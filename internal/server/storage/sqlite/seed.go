package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"
)

var seedWords = []string{
	"morning", "coffee", "garden", "river", "letter", "window", "journey",
	"music", "winter", "market", "story", "friend", "mountain", "kitchen",
	"library", "evening", "harbor", "notebook", "festival", "bicycle",
}

// Seed fills an empty posts table with n generated posts.
// A table that already has posts is left untouched. Returns the number of inserted posts.
func (s *Storage) Seed(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO posts (id, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for i := 1; i <= n; i++ {
		title, body := seedPost(i)
		if _, err := stmt.ExecContext(ctx, i, title, body, now, now); err != nil {
			return 0, fmt.Errorf("failed to insert seed post %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	return n, nil
}

// seedPost детерминированно строит заголовок и текст i-й записи
func seedPost(i int) (string, string) {
	w := func(k int) string {
		return seedWords[(i*7+k*3)%len(seedWords)]
	}

	title := fmt.Sprintf("%s %s", strings.ToUpper(w(0)[:1])+w(0)[1:], w(1))
	body := fmt.Sprintf("A short note about the %s, the %s and the %s.", w(2), w(3), w(4))
	return title, body
}
