package storage

import (
	"context"

	"github.com/iudanet/shelfsync/internal/models"
)

//go:generate moq -out progressstorage_mock.go . ProgressStorage

// ProgressStorage defines interface for storing playback progress on client
type ProgressStorage interface {
	// SaveProgress stores or updates a progress record (atomic per record)
	SaveProgress(ctx context.Context, record *models.ProgressRecord) error

	// GetProgress retrieves a progress record by library item ID
	// Returns ErrProgressNotFound if no record exists
	GetProgress(ctx context.Context, itemID string) (*models.ProgressRecord, error)

	// ListPending returns all records awaiting upload, in stable item ID order.
	// The order is not semantically significant but must be repeatable.
	ListPending(ctx context.Context) ([]*models.ProgressRecord, error)

	// MarkSynced clears the pending flag on a record.
	// Idempotent: marking an already-synced record is a no-op.
	MarkSynced(ctx context.Context, itemID string) error
}
