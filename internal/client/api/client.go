package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/pkg/api"
)

// ErrProgressNotFound indicates the server has no progress record for the item
var ErrProgressNotFound = errors.New("progress record not found on server")

// Client представляет HTTP клиент для взаимодействия с сервером библиотеки
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	clientID    string
}

// NewClient создает новый API клиент.
// timeout ограничивает каждый отдельный сетевой запрос (connect + read + write).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetCredentials устанавливает access token и client id для последующих запросов
func (c *Client) SetCredentials(accessToken, clientID string) {
	c.accessToken = accessToken
	c.clientID = clientID
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// FetchProgress получает текущую серверную запись прогресса для элемента.
// Возвращает ErrProgressNotFound, если сервер не знает об этом элементе.
func (c *Client) FetchProgress(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
	var resp api.ProgressResponse
	path := fmt.Sprintf("/api/v1/me/progress/%s", url.PathEscape(itemID))
	err := c.doRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		if errors.Is(err, ErrProgressNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("fetch progress request failed: %w", err)
	}

	return &models.ProgressRecord{
		ItemID:         resp.ItemID,
		ElapsedSeconds: resp.ElapsedSeconds,
		Duration:       resp.Duration,
		LastUpdate:     resp.LastUpdate,
		IsFinished:     resp.IsFinished,
	}, nil
}

// PushProgress отправляет локальную запись прогресса на сервер.
// Сервер обрабатывает повторные отправки идемпотентно.
func (c *Client) PushProgress(ctx context.Context, record *models.ProgressRecord) error {
	payload := api.ProgressPayload{
		ItemID:         record.ItemID,
		ElapsedSeconds: record.ElapsedSeconds,
		Duration:       record.Duration,
		LastUpdate:     record.LastUpdate,
		IsFinished:     record.IsFinished,
	}

	path := fmt.Sprintf("/api/v1/me/progress/%s", url.PathEscape(record.ItemID))
	if err := c.doRequest(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("push progress request failed: %w", err)
	}

	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Отсутствие записи на сервере - отдельный, не ретраящийся случай
	if resp.StatusCode == http.StatusNotFound {
		return ErrProgressNotFound
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
