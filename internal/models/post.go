package models

import (
	"strings"
	"time"
)

// Post представляет запись (заметку) пользователя.
// ID назначается сервером для загруженных записей
// или генерируется клиентом для созданных локально.
type Post struct {
	Title string `json:"title"` // Title заголовок записи
	Body  string `json:"body"`  // Body текст записи
	ID    int64  `json:"id"`    // ID уникальный идентификатор записи
}

// Matches reports whether the post title or body contains query,
// ignoring case. An empty query matches every post.
func (p Post) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Body), q)
}

// FilterPosts возвращает записи, подходящие под запрос, сохраняя исходный порядок.
// Пустой запрос возвращает всю коллекцию без фильтрации.
func FilterPosts(posts []Post, query string) []Post {
	query = strings.TrimSpace(query)
	if query == "" {
		return posts
	}

	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Matches(query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// NewLocalID генерирует клиентский ID на основе текущего времени (Unix ms).
// Если ID уже занят, он увеличивается до первого свободного значения.
func NewLocalID(now time.Time, taken func(id int64) bool) int64 {
	id := now.UnixMilli()
	for taken != nil && taken(id) {
		id++
	}
	return id
}
