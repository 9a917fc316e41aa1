package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/validation"
)

func (c *Cli) runRecord(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: shelfsync record <item> <seconds> [duration]")
	}

	itemID := args[0]
	if err := validation.ValidateItemID(itemID); err != nil {
		return fmt.Errorf("invalid item id: %w", err)
	}

	elapsed, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid seconds value %q: %w", args[1], err)
	}
	if err := validation.ValidateElapsedSeconds(elapsed); err != nil {
		return fmt.Errorf("invalid seconds value: %w", err)
	}

	duration := 0.0
	if len(args) > 2 {
		duration, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid duration value %q: %w", args[2], err)
		}
		if err := validation.ValidateDuration(duration); err != nil {
			return fmt.Errorf("invalid duration value: %w", err)
		}
	}

	record := &models.ProgressRecord{
		ItemID:         itemID,
		ElapsedSeconds: elapsed,
		Duration:       duration,
		LastUpdate:     time.Now().UnixMilli(),
		PendingUpload:  true,
	}

	// Сохраняем известные поля предыдущей записи, если новые не заданы
	if existing, err := c.store.GetProgress(ctx, itemID); err == nil {
		if duration == 0 {
			record.Duration = existing.Duration
		}
		record.IsFinished = existing.IsFinished
	} else if !errors.Is(err, storage.ErrProgressNotFound) {
		return fmt.Errorf("failed to read existing progress: %w", err)
	}

	// Позиция у конца элемента означает завершение прослушивания
	if record.Duration > 0 && record.ElapsedSeconds >= record.Duration {
		record.IsFinished = true
	}

	if err := c.store.SaveProgress(ctx, record); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	fmt.Printf("✓ Recorded %s at %s\n", itemID, formatPosition(record))
	fmt.Println("Run 'shelfsync sync' to upload.")

	return nil
}
