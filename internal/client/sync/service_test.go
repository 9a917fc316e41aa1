package sync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shelfsync/internal/client/api"
	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/models"
)

// newFakeStore создает mock хранилища поверх map, как реальное хранилище
func newFakeStore() (*storage.ProgressStorageMock, map[string]*models.ProgressRecord) {
	records := make(map[string]*models.ProgressRecord)

	mock := &storage.ProgressStorageMock{
		SaveProgressFunc: func(ctx context.Context, record *models.ProgressRecord) error {
			records[record.ItemID] = record.Clone()
			return nil
		},
		GetProgressFunc: func(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
			if record, ok := records[itemID]; ok {
				return record.Clone(), nil
			}
			return nil, storage.ErrProgressNotFound
		},
		ListPendingFunc: func(ctx context.Context) ([]*models.ProgressRecord, error) {
			var pending []*models.ProgressRecord
			for _, record := range records {
				if record.PendingUpload {
					pending = append(pending, record.Clone())
				}
			}
			return pending, nil
		},
		MarkSyncedFunc: func(ctx context.Context, itemID string) error {
			record, ok := records[itemID]
			if !ok {
				return storage.ErrProgressNotFound
			}
			record.PendingUpload = false
			return nil
		},
	}

	return mock, records
}

func newTestService(apiClient api.ProgressAPI, store storage.ProgressStorage) *Service {
	return NewService(apiClient, store, 3, time.Millisecond, testLogger())
}

func TestSyncItem_LocalNewer_Uploads(t *testing.T) {
	// Сценарий: локальная {120s, 1000} против серверной {90s, 500}
	local := &models.ProgressRecord{
		ItemID:         "A1",
		ElapsedSeconds: 120,
		LastUpdate:     1000,
		PendingUpload:  true,
	}

	var pushed *models.ProgressRecord
	mockAPI := &api.ProgressAPIMock{
		FetchProgressFunc: func(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
			return &models.ProgressRecord{
				ItemID:         "A1",
				ElapsedSeconds: 90,
				LastUpdate:     500,
			}, nil
		},
		PushProgressFunc: func(ctx context.Context, record *models.ProgressRecord) error {
			pushed = record.Clone()
			return nil
		},
	}

	mockStore, records := newFakeStore()
	service := newTestService(mockAPI, mockStore)

	err := service.SyncItem(context.Background(), local)
	require.NoError(t, err)

	// Отправлена именно локальная запись
	require.NotNil(t, pushed)
	assert.Equal(t, 120.0, pushed.ElapsedSeconds)
	assert.Equal(t, int64(1000), pushed.LastUpdate)

	// После успеха флаг снят в хранилище
	stored := records["A1"]
	require.NotNil(t, stored)
	assert.False(t, stored.PendingUpload)
	assert.Equal(t, 120.0, stored.ElapsedSeconds)
}

func TestSyncItem_RemoteNewer_AdoptsWithoutPush(t *testing.T) {
	// Сценарий: серверная запись новее {lastUpdate: 2000} - push не выполняется
	local := &models.ProgressRecord{
		ItemID:         "A1",
		ElapsedSeconds: 120,
		LastUpdate:     1000,
		PendingUpload:  true,
	}

	remote := &models.ProgressRecord{
		ItemID:         "A1",
		ElapsedSeconds: 300,
		LastUpdate:     2000,
	}

	mockAPI := &api.ProgressAPIMock{
		FetchProgressFunc: func(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
			return remote.Clone(), nil
		},
		PushProgressFunc: func(ctx context.Context, record *models.ProgressRecord) error {
			return nil
		},
	}

	mockStore, records := newFakeStore()
	service := newTestService(mockAPI, mockStore)

	err := service.SyncItem(context.Background(), local)
	require.NoError(t, err)

	// Push не вызывался
	assert.Empty(t, mockAPI.PushProgressCalls())

	// Локальная запись перезаписана серверной со снятым флагом
	stored := records["A1"]
	require.NotNil(t, stored)
	assert.Equal(t, remote.ElapsedSeconds, stored.ElapsedSeconds)
	assert.Equal(t, remote.LastUpdate, stored.LastUpdate)
	assert.False(t, stored.PendingUpload)
}

func TestSyncItem_EqualTimestamps_Uploads(t *testing.T) {
	// Равные timestamps: серверного преимущества нет, локальная отправляется
	local := &models.ProgressRecord{ItemID: "A1", LastUpdate: 1000, PendingUpload: true}

	mockAPI := &api.ProgressAPIMock{
		FetchProgressFunc: func(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
			return &models.ProgressRecord{ItemID: "A1", LastUpdate: 1000}, nil
		},
		PushProgressFunc: func(ctx context.Context, record *models.ProgressRecord) error {
			return nil
		},
	}

	mockStore, _ := newFakeStore()
	service := newTestService(mockAPI, mockStore)

	err := service.SyncItem(context.Background(), local)
	require.NoError(t, err)
	assert.Len(t, mockAPI.PushProgressCalls(), 1)
}

func TestSyncItem_RemoteMissing_Uploads(t *testing.T) {
	// 404 от сервера - не ошибка: локальная запись побеждает без повторов fetch
	local := &models.ProgressRecord{ItemID: "A1", LastUpdate: 1000, PendingUpload: true}

	mockAPI := &api.ProgressAPIMock{
		FetchProgressFunc: func(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
			return nil, api.ErrProgressNotFound
		},
		PushProgressFunc: func(ctx context.Context, record *models.ProgressRecord) error {
			return nil
		},
	}

	mockStore, _ := newFakeStore()
	service := newTestService(mockAPI, mockStore)

	err := service.SyncItem(context.Background(), local)
	require.NoError(t, err)

	// Отсутствие записи не ретраится
	assert.Len(t, mockAPI.FetchProgressCalls(), 1)
	assert.Len(t, mockAPI.PushProgressCalls(), 1)
}

func TestSyncItem_FetchFailure_RetriedThenFails(t *testing.T) {
	// Сбой fetch ретраится той же политикой, затем становится обычной ошибкой
	local := &models.ProgressRecord{ItemID: "A1", LastUpdate: 1000, PendingUpload: true}

	mockAPI := &api.ProgressAPIMock{
		FetchProgressFunc: func(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
			return nil, errors.New("connection refused")
		},
	}

	mockStore, _ := newFakeStore()
	service := newTestService(mockAPI, mockStore)

	err := service.SyncItem(context.Background(), local)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch remote progress")

	// 1 начальная попытка + 3 повтора
	assert.Len(t, mockAPI.FetchProgressCalls(), 4)
}

func TestSyncAllPending_AllSuccess(t *testing.T) {
	mockAPI := &api.ProgressAPIMock{
		FetchProgressFunc: func(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
			return nil, api.ErrProgressNotFound
		},
		PushProgressFunc: func(ctx context.Context, record *models.ProgressRecord) error {
			return nil
		},
	}

	mockStore, records := newFakeStore()
	ctx := context.Background()

	for i := range 3 {
		itemID := fmt.Sprintf("li_%d", i)
		require.NoError(t, mockStore.SaveProgress(ctx, &models.ProgressRecord{
			ItemID:        itemID,
			LastUpdate:    int64(1000 + i),
			PendingUpload: true,
		}))
	}

	service := newTestService(mockAPI, mockStore)
	result := service.SyncAllPending(ctx)

	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.Errors)

	// Все записи синхронизированы
	for _, record := range records {
		assert.False(t, record.PendingUpload)
	}
}

func TestSyncAllPending_PartialFailure(t *testing.T) {
	// Элементы из F падают, из S проходят: батч не прерывается,
	// итог содержит полный подсчет
	failing := map[string]bool{"li_b": true, "li_d": true}

	mockAPI := &api.ProgressAPIMock{
		FetchProgressFunc: func(ctx context.Context, itemID string) (*models.ProgressRecord, error) {
			return nil, api.ErrProgressNotFound
		},
		PushProgressFunc: func(ctx context.Context, record *models.ProgressRecord) error {
			if failing[record.ItemID] {
				return errors.New("server unavailable")
			}
			return nil
		},
	}

	mockStore, records := newFakeStore()
	ctx := context.Background()

	for _, itemID := range []string{"li_a", "li_b", "li_c", "li_d"} {
		require.NoError(t, mockStore.SaveProgress(ctx, &models.ProgressRecord{
			ItemID:        itemID,
			LastUpdate:    1000,
			PendingUpload: true,
		}))
	}

	service := newTestService(mockAPI, mockStore)
	result := service.SyncAllPending(ctx)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
	require.Len(t, result.Errors, 2)
	for _, msg := range result.Errors {
		assert.Contains(t, msg, "server unavailable")
	}

	// Успешные синхронизированы, упавшие остались pending
	assert.False(t, records["li_a"].PendingUpload)
	assert.False(t, records["li_c"].PendingUpload)
	assert.True(t, records["li_b"].PendingUpload)
	assert.True(t, records["li_d"].PendingUpload)
}

func TestSyncAllPending_EmptyStore(t *testing.T) {
	mockAPI := &api.ProgressAPIMock{}
	mockStore, _ := newFakeStore()

	service := newTestService(mockAPI, mockStore)
	result := service.SyncAllPending(context.Background())

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.Errors)
	assert.Empty(t, mockAPI.FetchProgressCalls())
}

func TestSyncAllPending_ListError_Captured(t *testing.T) {
	// Ошибка листинга не выбрасывается наружу, а попадает в итог
	mockStore := &storage.ProgressStorageMock{
		ListPendingFunc: func(ctx context.Context) ([]*models.ProgressRecord, error) {
			return nil, errors.New("database closed")
		},
	}

	service := newTestService(&api.ProgressAPIMock{}, mockStore)
	result := service.SyncAllPending(context.Background())

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "database closed")
}
