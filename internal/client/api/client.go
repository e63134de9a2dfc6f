package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/pkg/api"
)

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 30 * time.Second

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет операции удаленного источника записей
type ClientAPI interface {
	// FetchPage загружает страницу записей
	FetchPage(ctx context.Context, skip, limit int) ([]models.Post, error)

	// CreatePost отправляет новую запись на сервер
	CreatePost(ctx context.Context, post models.Post) error

	// UpdatePost отправляет измененную запись на сервер
	UpdatePost(ctx context.Context, post models.Post) error

	// DeletePost удаляет запись на сервере
	DeletePost(ctx context.Context, id int64) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// FetchPage загружает страницу записей: GET /posts?limit=L&skip=S
func (c *Client) FetchPage(ctx context.Context, skip, limit int) ([]models.Post, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("skip", strconv.Itoa(skip))

	var resp api.PostsPage
	if err := c.doRequest(ctx, http.MethodGet, "/posts?"+query.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch page request failed: %w", err)
	}

	posts := make([]models.Post, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		posts = append(posts, models.Post{ID: p.ID, Title: p.Title, Body: p.Body})
	}

	return posts, nil
}

// CreatePost отправляет новую запись: POST /posts
// ID, назначенный сервером в ответе, игнорируется: локальный ID остается основным
func (c *Client) CreatePost(ctx context.Context, post models.Post) error {
	if err := c.doRequest(ctx, http.MethodPost, "/posts", toAPIPost(post), nil); err != nil {
		return fmt.Errorf("create post request failed: %w", err)
	}
	return nil
}

// UpdatePost отправляет измененную запись: PUT /posts/{id}
func (c *Client) UpdatePost(ctx context.Context, post models.Post) error {
	path := fmt.Sprintf("/posts/%d", post.ID)
	if err := c.doRequest(ctx, http.MethodPut, path, toAPIPost(post), nil); err != nil {
		return fmt.Errorf("update post request failed: %w", err)
	}
	return nil
}

// DeletePost удаляет запись: DELETE /posts/{id}
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/posts/%d", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete post request failed: %w", err)
	}
	return nil
}

func toAPIPost(p models.Post) api.Post {
	return api.Post{ID: p.ID, Title: p.Title, Body: p.Body}
}

// doRequest выполняет HTTP запрос
// Ошибки транспорта и не-2xx статусы возвращаются как *NetworkError
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		netErr := &NetworkError{Method: method, Path: path, StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			netErr.Message = errResp.Message
			if netErr.Message == "" {
				netErr.Message = errResp.Error
			}
		}
		return netErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
