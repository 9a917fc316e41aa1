package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL, 30*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешную аутентификацию
func TestClient_Login(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "testuser", req.Username)
		assert.NotEmpty(t, req.ClientID)

		resp := api.TokenResponse{
			AccessToken: "token-abc",
			UserID:      "user-123",
			Username:    "testuser",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Username: "testuser",
		Password: "secret",
		ClientID: "client-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", resp.AccessToken)
	assert.Equal(t, "user-123", resp.UserID)
}

// TestClient_FetchProgress проверяет получение серверной записи прогресса
func TestClient_FetchProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/me/progress/li_abc123", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "client-1", r.Header.Get("X-Client-Id"))

		resp := api.ProgressResponse{
			ItemID:         "li_abc123",
			ElapsedSeconds: 90,
			Duration:       3600,
			LastUpdate:     500,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	client.SetCredentials("token-abc", "client-1")

	record, err := client.FetchProgress(context.Background(), "li_abc123")
	require.NoError(t, err)
	assert.Equal(t, "li_abc123", record.ItemID)
	assert.Equal(t, 90.0, record.ElapsedSeconds)
	assert.Equal(t, int64(500), record.LastUpdate)
	// Серверная запись не помечена как ожидающая загрузки
	assert.False(t, record.PendingUpload)
}

// TestClient_FetchProgress_NotFound проверяет обработку 404
func TestClient_FetchProgress_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.FetchProgress(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProgressNotFound)
}

// TestClient_PushProgress проверяет отправку записи на сервер
func TestClient_PushProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/v1/me/progress/li_abc123", r.URL.Path)

		var payload api.ProgressPayload
		err := json.NewDecoder(r.Body).Decode(&payload)
		require.NoError(t, err)
		assert.Equal(t, "li_abc123", payload.ItemID)
		assert.Equal(t, 120.0, payload.ElapsedSeconds)
		assert.Equal(t, int64(1000), payload.LastUpdate)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.PushProgress(context.Background(), &models.ProgressRecord{
		ItemID:         "li_abc123",
		ElapsedSeconds: 120,
		LastUpdate:     1000,
		PendingUpload:  true,
	})
	require.NoError(t, err)
}

// TestClient_PushProgress_ServerError проверяет обработку не-2xx ответа
func TestClient_PushProgress_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "database unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.PushProgress(context.Background(), &models.ProgressRecord{ItemID: "li_abc123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

// TestClient_Timeout проверяет, что таймаут клиента прерывает запрос
func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond)

	_, err := client.FetchProgress(context.Background(), "li_abc123")
	assert.Error(t, err)
}
