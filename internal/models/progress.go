package models

// ProgressRecord представляет прогресс воспроизведения одного элемента библиотеки.
// Запись создается локально при продвижении воспроизведения и синхронизируется
// с сервером по правилу Last-Write-Wins (побеждает больший LastUpdate).
type ProgressRecord struct {
	ItemID         string  `json:"item_id"`         // ItemID идентификатор элемента библиотеки (непустой, стабильный)
	ElapsedSeconds float64 `json:"elapsed_seconds"` // ElapsedSeconds позиция воспроизведения в секундах (>= 0)
	Duration       float64 `json:"duration"`        // Duration общая длительность элемента в секундах
	LastUpdate     int64   `json:"last_update"`     // LastUpdate время последнего обновления (epoch millis)
	IsFinished     bool    `json:"is_finished"`     // IsFinished флаг полного прослушивания
	PendingUpload  bool    `json:"pending_upload"`  // PendingUpload true пока запись не подтверждена сервером
}

// IsNewerThan определяет, какая из двух записей новее.
// Согласно правилу LWW (Last-Write-Wins) сравниваются только LastUpdate:
// при равных timestamps запись НЕ считается более новой, чтобы не порождать
// лишних загрузок на сервер.
func (r *ProgressRecord) IsNewerThan(other *ProgressRecord) bool {
	return r.LastUpdate > other.LastUpdate
}

// Clone создает копию записи прогресса
func (r *ProgressRecord) Clone() *ProgressRecord {
	clone := *r
	return &clone
}
