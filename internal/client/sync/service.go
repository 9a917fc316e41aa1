package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/shelfsync/internal/client/api"
	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/models"
)

// Service handles progress synchronization between client and server.
// Конфликты разрешаются по правилу Last-Write-Wins (больший LastUpdate
// авторитетен независимо от источника).
type Service struct {
	apiClient  api.ProgressAPI
	store      storage.ProgressStorage
	uploader   *Uploader
	logger     *slog.Logger
	maxRetries uint64
	baseDelay  time.Duration
}

// NewService creates a new sync service.
// maxRetries и baseDelay управляют политикой повторов и для fetch, и для push.
func NewService(apiClient api.ProgressAPI, store storage.ProgressStorage, maxRetries int, baseDelay time.Duration, logger *slog.Logger) *Service {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	return &Service{
		apiClient:  apiClient,
		store:      store,
		uploader:   NewUploader(apiClient, store, maxRetries, baseDelay, logger),
		logger:     logger,
		maxRetries: uint64(maxRetries),
		baseDelay:  baseDelay,
	}
}

// SyncResult contains batch sync operation results
type SyncResult struct {
	SuccessCount int      // количество успешно синхронизированных элементов
	FailureCount int      // количество элементов с ошибками
	Errors       []string // описания ошибок в порядке их возникновения
}

// SyncItem приводит один элемент к состоянию "синхронизирован":
//  1. Получает серверную запись (с той же политикой повторов, что и загрузка).
//  2. Разрешает конфликт по LWW: серверная новее - перезаписываем локальную
//     и снимаем флаг PendingUpload, загрузка не нужна; иначе отправляем
//     локальную на сервер.
//
// nil означает, что локальное состояние согласовано с сервером
// (не обязательно, что локальное изменение было отправлено).
func (s *Service) SyncItem(ctx context.Context, local *models.ProgressRecord) error {
	remote, err := s.fetchRemote(ctx, local.ItemID)
	if err != nil {
		if errors.Is(err, api.ErrProgressNotFound) {
			// Сервер не знает об элементе - конкурента нет, локальная побеждает
			s.logger.Debug("no remote progress, uploading local", "item_id", local.ItemID)
			return s.uploader.Upload(ctx, local)
		}
		return fmt.Errorf("failed to fetch remote progress: %w", err)
	}

	switch decision := Resolve(local, remote); decision {
	case AdoptRemote:
		// Серверная запись авторитетна: перезаписываем локальную копию
		adopted := remote.Clone()
		adopted.PendingUpload = false
		if err := s.store.SaveProgress(ctx, adopted); err != nil {
			return fmt.Errorf("failed to adopt remote progress: %w", err)
		}
		s.logger.Debug("adopted remote progress",
			"item_id", local.ItemID,
			"local_update", local.LastUpdate,
			"remote_update", remote.LastUpdate)
		return nil

	default: // KeepLocalAndUpload
		return s.uploader.Upload(ctx, local)
	}
}

// SyncAllPending обходит все локальные записи, ожидающие загрузки,
// строго последовательно и собирает итог в SyncResult.
// Ошибка одного элемента не прерывает проход: batch всегда доходит до конца
// и возвращает полный итог. Функция никогда не возвращает ошибку наружу.
func (s *Service) SyncAllPending(ctx context.Context) *SyncResult {
	result := &SyncResult{}

	pending, err := s.store.ListPending(ctx)
	if err != nil {
		s.logger.Error("failed to list pending items", "error", err)
		result.Errors = append(result.Errors, fmt.Sprintf("list pending items: %v", err))
		return result
	}

	s.logger.Info("starting batch sync", "pending", len(pending))

	for _, record := range pending {
		// Не более одного элемента одновременно: следующий не начинается,
		// пока не завершатся все повторы текущего
		if err := s.SyncItem(ctx, record); err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, fmt.Sprintf("item %s: %v", record.ItemID, err))
			s.logger.Warn("failed to sync item",
				"item_id", record.ItemID,
				"error", err)
			continue
		}

		if err := s.store.MarkSynced(ctx, record.ItemID); err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, fmt.Sprintf("item %s: mark synced: %v", record.ItemID, err))
			s.logger.Warn("failed to mark item synced",
				"item_id", record.ItemID,
				"error", err)
			continue
		}

		result.SuccessCount++
	}

	s.logger.Info("batch sync completed",
		"synced", result.SuccessCount,
		"failed", result.FailureCount)

	return result
}

// fetchRemote получает серверную запись с ограниченными повторами.
// api.ErrProgressNotFound не считается временной ошибкой и не ретраится.
func (s *Service) fetchRemote(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
	var remote *models.ProgressRecord

	err := retry.Do(ctx, retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.baseDelay)),
		func(ctx context.Context) error {
			record, err := s.apiClient.FetchProgress(ctx, itemID)
			if err != nil {
				if errors.Is(err, api.ErrProgressNotFound) {
					return err
				}
				return retry.RetryableError(err)
			}
			remote = record
			return nil
		})

	if err != nil {
		return nil, err
	}

	return remote, nil
}
