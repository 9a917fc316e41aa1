package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/shelfsync/internal/client/auth"
	"github.com/iudanet/shelfsync/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Status ===")
	fmt.Println()

	session, err := c.authService.CurrentSession(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		fmt.Println("Status: Not authenticated")
		fmt.Println()
		fmt.Println("Run 'shelfsync login' to authenticate.")
	case errors.Is(err, auth.ErrTokenExpired):
		fmt.Println("Status: Token has expired. Please login again.")
	case err != nil:
		return fmt.Errorf("failed to check session: %w", err)
	default:
		fmt.Println("Status: Authenticated")
		fmt.Printf("Username: %s\n", session.Username)
		if session.ExpiresAt > 0 {
			expiresAt := time.Unix(session.ExpiresAt, 0)
			fmt.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
			fmt.Printf("Time remaining: %s\n", time.Until(expiresAt).Round(time.Second))
		}
	}

	// Количество записей, ожидающих отправки
	pending, err := c.store.ListPending(ctx)
	if err != nil {
		fmt.Printf("\nWarning: Failed to get pending count: %v\n", err)
		return nil
	}

	fmt.Println()
	if len(pending) > 0 {
		fmt.Printf("⚠️  Pending upload: %d record(s)\n", len(pending))
		fmt.Println("Run 'shelfsync sync' to synchronize with the server.")
	} else {
		fmt.Println("✓ All progress synchronized with the server")
	}

	return nil
}
