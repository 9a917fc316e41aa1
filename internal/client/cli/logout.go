package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/shelfsync/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	fmt.Println("✓ Logged out. Local progress records are kept.")
	return nil
}
