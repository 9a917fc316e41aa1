package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/models"
)

// SaveProgress creates or updates a progress record.
// Перезапись безусловная: LWW-решение принимает слой синхронизации, не хранилище.
func (s *Storage) SaveProgress(ctx context.Context, record *models.ProgressRecord) error {
	query := `
		INSERT INTO progress (
			item_id, elapsed_seconds, duration,
			last_update, is_finished, pending_upload
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			elapsed_seconds = excluded.elapsed_seconds,
			duration = excluded.duration,
			last_update = excluded.last_update,
			is_finished = excluded.is_finished,
			pending_upload = excluded.pending_upload
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ItemID,
		record.ElapsedSeconds,
		record.Duration,
		record.LastUpdate,
		boolToInt(record.IsFinished),
		boolToInt(record.PendingUpload),
	)

	if err != nil {
		return fmt.Errorf("failed to save progress record: %w", err)
	}

	return nil
}

// GetProgress retrieves a single progress record by item ID
// Returns ErrProgressNotFound if record doesn't exist
func (s *Storage) GetProgress(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
	query := `
		SELECT item_id, elapsed_seconds, duration,
		       last_update, is_finished, pending_upload
		FROM progress
		WHERE item_id = ?
	`

	row := s.db.QueryRowContext(ctx, query, itemID)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to get progress record: %w", err)
	}

	return record, nil
}

// ListPending returns all records awaiting upload in item ID order
func (s *Storage) ListPending(ctx context.Context) ([]*models.ProgressRecord, error) {
	query := `
		SELECT item_id, elapsed_seconds, duration,
		       last_update, is_finished, pending_upload
		FROM progress
		WHERE pending_upload = 1
		ORDER BY item_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending records: %w", err)
	}
	defer rows.Close()

	var records []*models.ProgressRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return records, nil
}

// MarkSynced clears the pending flag on a record.
// Idempotent: повторный вызов для уже синхронизированной записи — no-op.
func (s *Storage) MarkSynced(ctx context.Context, itemID string) error {
	query := `UPDATE progress SET pending_upload = 0 WHERE item_id = ?`

	result, err := s.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("failed to mark record synced: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		// Либо записи нет, либо она уже синхронизирована
		if _, err := s.GetProgress(ctx, itemID); err != nil {
			return err
		}
	}

	return nil
}

// scanner абстрагирует *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord читает запись прогресса из строки результата
func scanRecord(row scanner) (*models.ProgressRecord, error) {
	var record models.ProgressRecord
	var isFinished, pendingUpload int

	err := row.Scan(
		&record.ItemID,
		&record.ElapsedSeconds,
		&record.Duration,
		&record.LastUpdate,
		&isFinished,
		&pendingUpload,
	)
	if err != nil {
		return nil, err
	}

	record.IsFinished = isFinished != 0
	record.PendingUpload = pendingUpload != 0

	return &record, nil
}

// boolToInt конвертирует bool в int для SQLite
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
