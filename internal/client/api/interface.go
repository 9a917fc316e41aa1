package api

import (
	"context"

	"github.com/iudanet/shelfsync/internal/models"
)

//go:generate moq -out progressapi_mock.go . ProgressAPI

// ProgressAPI defines the remote progress operations consumed by the sync layer.
// Implementations perform a single attempt per call and never retry themselves.
type ProgressAPI interface {
	// FetchProgress retrieves the server-side progress record for an item
	// Returns ErrProgressNotFound if the server has no record
	FetchProgress(ctx context.Context, itemID string) (*models.ProgressRecord, error)

	// PushProgress uploads a local progress record to the server
	PushProgress(ctx context.Context, record *models.ProgressRecord) error
}

// Compile-time check that Client implements ProgressAPI
var _ ProgressAPI = (*Client)(nil)
