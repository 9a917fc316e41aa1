package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/shelfsync/internal/client/api"
	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/models"
)

// Default retry tunables
const (
	// DefaultMaxRetries максимальное количество повторов после первой попытки
	DefaultMaxRetries = 3
	// DefaultBaseDelay базовая задержка перед первым повтором,
	// удваивается на каждом следующем (1s, 2s, 4s)
	DefaultBaseDelay = 1000 * time.Millisecond
)

// Uploader отправляет запись прогресса на сервер с ограниченным
// экспоненциальным backoff. Любая ошибка попытки (сетевая, не-2xx ответ,
// битые данные) считается временной и повторяется одинаково.
type Uploader struct {
	apiClient  api.ProgressAPI
	store      storage.ProgressStorage
	logger     *slog.Logger
	maxRetries uint64
	baseDelay  time.Duration
}

// NewUploader creates a new retrying uploader.
// maxRetries <= 0 и baseDelay <= 0 заменяются значениями по умолчанию.
func NewUploader(apiClient api.ProgressAPI, store storage.ProgressStorage, maxRetries int, baseDelay time.Duration, logger *slog.Logger) *Uploader {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	return &Uploader{
		apiClient:  apiClient,
		store:      store,
		logger:     logger,
		maxRetries: uint64(maxRetries),
		baseDelay:  baseDelay,
	}
}

// Upload выполняет до maxRetries+1 попыток отправки записи.
// После подтверждения сервером запись с PendingUpload=false синхронно
// сохраняется в локальное хранилище ДО возврата успеха, чтобы сбой сразу
// после загрузки не приводил к повторной постановке в очередь.
func (u *Uploader) Upload(ctx context.Context, record *models.ProgressRecord) error {
	attempt := 0

	err := retry.Do(ctx, u.backoff(), func(ctx context.Context) error {
		attempt++
		if err := u.apiClient.PushProgress(ctx, record); err != nil {
			u.logger.Debug("push attempt failed",
				"item_id", record.ItemID,
				"attempt", attempt,
				"error", err)
			// Все классы ошибок попытки ретраятся одинаково
			return retry.RetryableError(err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("upload failed after %d attempts: %w", attempt, err)
	}

	// Фиксируем подтверждение сервера в локальном хранилище
	synced := record.Clone()
	synced.PendingUpload = false
	if err := u.store.SaveProgress(ctx, synced); err != nil {
		return fmt.Errorf("failed to persist uploaded record: %w", err)
	}

	u.logger.Debug("uploaded progress",
		"item_id", record.ItemID,
		"attempts", attempt,
		"last_update", record.LastUpdate)

	return nil
}

// backoff возвращает политику повторов: baseDelay * 2^attemptIndex,
// не более maxRetries повторов
func (u *Uploader) backoff() retry.Backoff {
	return retry.WithMaxRetries(u.maxRetries, retry.NewExponential(u.baseDelay))
}
