package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/pkg/api"
)

// ErrTokenExpired indicates the stored access token is no longer valid
var ErrTokenExpired = errors.New("access token has expired")

// AuthAPI defines the server operations used during login
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}

// Service управляет сессией пользователя: логин на сервере библиотеки
// и хранение токена доступа в локальном хранилище.
type Service struct {
	apiClient AuthAPI
	store     storage.AuthStorage
}

// NewService creates a new auth service
func NewService(apiClient AuthAPI, store storage.AuthStorage) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
	}
}

// Login аутентифицируется на сервере и сохраняет сессию локально.
// ClientID устройства переиспользуется между сессиями, чтобы сервер
// видел то же устройство при повторных логинах.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	clientID := ""
	if existing, err := s.store.GetAuth(ctx); err == nil && existing.ClientID != "" {
		clientID = existing.ClientID
	}
	if clientID == "" {
		clientID = uuid.New().String()
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
		ClientID: clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt, err := TokenExpiry(resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	authData := &storage.AuthData{
		Username:    resp.Username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ClientID:    clientID,
	}
	if !expiresAt.IsZero() {
		authData.ExpiresAt = expiresAt.Unix()
	}

	if err := s.store.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return authData, nil
}

// Logout removes the stored session
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentSession возвращает сохраненную сессию.
// Returns storage.ErrAuthNotFound if no session exists,
// ErrTokenExpired if the token lifetime has passed.
func (s *Service) CurrentSession(ctx context.Context) (*storage.AuthData, error) {
	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		return nil, err
	}

	if authData.ExpiresAt > 0 && time.Now().Unix() >= authData.ExpiresAt {
		return nil, ErrTokenExpired
	}

	return authData, nil
}
