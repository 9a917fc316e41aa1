package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/shelfsync/internal/client/storage"
)

// SaveAuth stores authentication data (single row table)
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	query := `
		INSERT INTO auth (id, username, user_id, access_token, client_id, expires_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			user_id = excluded.user_id,
			access_token = excluded.access_token,
			client_id = excluded.client_id,
			expires_at = excluded.expires_at
	`

	_, err := s.db.ExecContext(ctx, query,
		auth.Username,
		auth.UserID,
		auth.AccessToken,
		auth.ClientID,
		auth.ExpiresAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	return nil
}

// GetAuth retrieves stored authentication data
// Returns ErrAuthNotFound if no auth data exists
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	query := `
		SELECT username, user_id, access_token, client_id, expires_at
		FROM auth
		WHERE id = 1
	`

	var auth storage.AuthData
	err := s.db.QueryRowContext(ctx, query).Scan(
		&auth.Username,
		&auth.UserID,
		&auth.AccessToken,
		&auth.ClientID,
		&auth.ExpiresAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAuthNotFound
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	return &auth, nil
}

// DeleteAuth removes stored authentication data (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM auth WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return storage.ErrAuthNotFound
	}

	return nil
}
