package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/models"
)

// SaveProgress stores or updates a progress record in BoltDB.
// Запись сохраняется атомарно в рамках одной транзакции.
func (s *Storage) SaveProgress(ctx context.Context, record *models.ProgressRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем запись в JSON
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal progress record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProgress)
		if bucket == nil {
			return fmt.Errorf("progress bucket not found")
		}

		// Сохраняем по ключу ItemID
		if err := bucket.Put([]byte(record.ItemID), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetProgress retrieves a progress record by library item ID
func (s *Storage) GetProgress(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record *models.ProgressRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProgress)
		if bucket == nil {
			return storage.ErrProgressNotFound
		}

		data := bucket.Get([]byte(itemID))
		if data == nil {
			return storage.ErrProgressNotFound
		}

		// Десериализуем
		record = &models.ProgressRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListPending returns all records awaiting upload.
// BoltDB iterates keys in byte order, so the result is stable between calls.
func (s *Storage) ListPending(ctx context.Context) ([]*models.ProgressRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.ProgressRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProgress)
		if bucket == nil {
			// Нет bucket - возвращаем пустой список
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var record models.ProgressRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			if record.PendingUpload {
				records = append(records, &record)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list pending records: %w", err)
	}

	return records, nil
}

// MarkSynced clears the pending flag on a record.
// Повторный вызов для уже синхронизированной записи ничего не меняет.
func (s *Storage) MarkSynced(ctx context.Context, itemID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProgress)
		if bucket == nil {
			return storage.ErrProgressNotFound
		}

		data := bucket.Get([]byte(itemID))
		if data == nil {
			return storage.ErrProgressNotFound
		}

		var record models.ProgressRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		if !record.PendingUpload {
			// Уже синхронизирована - no-op
			return nil
		}

		record.PendingUpload = false
		updated, err := json.Marshal(&record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		if err := bucket.Put([]byte(itemID), updated); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})
}
