package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/shelfsync/internal/models"
)

func (c *Cli) runList(ctx context.Context) error {
	fmt.Println("=== Pending Progress ===")
	fmt.Println()

	pending, err := c.store.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending records: %w", err)
	}

	if len(pending) == 0 {
		fmt.Println("Nothing to upload.")
		return nil
	}

	fmt.Printf("Found %d record(s) waiting for upload:\n", len(pending))
	fmt.Println()

	for i, record := range pending {
		fmt.Printf("%d. %s\n", i+1, record.ItemID)
		fmt.Printf("   Position: %s\n", formatPosition(record))
		fmt.Printf("   Updated:  %s\n", time.UnixMilli(record.LastUpdate).Format(time.RFC3339))
		if record.IsFinished {
			fmt.Println("   Finished: yes")
		}
		fmt.Println()
	}

	return nil
}

// formatPosition выводит позицию воспроизведения с процентом, если известна длительность
func formatPosition(record *models.ProgressRecord) string {
	if record.Duration > 0 {
		percent := record.ElapsedSeconds / record.Duration * 100
		return fmt.Sprintf("%.0fs of %.0fs (%.1f%%)", record.ElapsedSeconds, record.Duration, percent)
	}
	return fmt.Sprintf("%.0fs", record.ElapsedSeconds)
}
