package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return c.runSyncItem(ctx, args[0])
	}
	return c.runSyncAll(ctx)
}

// runSyncAll синхронизирует все записи, ожидающие загрузки
func (c *Cli) runSyncAll(ctx context.Context) error {
	if !c.quiet {
		fmt.Println("=== Synchronization ===")
		fmt.Println()
		fmt.Println("Starting synchronization with server...")
		fmt.Println()
	}

	result := c.syncService.SyncAllPending(ctx)

	if !c.quiet {
		printSyncResult(os.Stdout, result)
	}

	return nil
}

// runSyncItem синхронизирует один элемент.
// Ошибка синхронизации не фатальна: уведомление печатается
// (если не включен quiet), запись остается в очереди на загрузку.
func (c *Cli) runSyncItem(ctx context.Context, itemID string) error {
	record, err := c.store.GetProgress(ctx, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrProgressNotFound) {
			return fmt.Errorf("no local progress for item %s", itemID)
		}
		return fmt.Errorf("failed to read progress: %w", err)
	}

	if err := c.syncService.SyncItem(ctx, record); err != nil {
		if !c.quiet {
			fmt.Fprintf(os.Stderr, "Sync failed for %s: %v\n", itemID, err)
			fmt.Fprintln(os.Stderr, "The record is kept locally and will be retried on the next sync.")
		}
		return nil
	}

	if !c.quiet {
		fmt.Printf("✓ %s synchronized\n", itemID)
	}

	return nil
}

// printSyncResult печатает итог batch синхронизации
func printSyncResult(w io.Writer, result *sync.SyncResult) {
	if result.FailureCount == 0 && len(result.Errors) == 0 {
		fmt.Fprintln(w, "✓ Synchronization completed successfully!")
	} else {
		fmt.Fprintln(w, "Synchronization completed with errors.")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Synced: %d item(s)\n", result.SuccessCount)
	fmt.Fprintf(w, "Failed: %d item(s)\n", result.FailureCount)

	if len(result.Errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors:")
		for _, msg := range result.Errors {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
}
