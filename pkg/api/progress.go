package api

// ProgressPayload представляет прогресс воспроизведения, отправляемый на сервер
type ProgressPayload struct {
	ItemID         string  `json:"item_id"`         // идентификатор элемента библиотеки
	ElapsedSeconds float64 `json:"elapsed_seconds"` // позиция воспроизведения в секундах
	Duration       float64 `json:"duration"`        // общая длительность в секундах
	LastUpdate     int64   `json:"last_update"`     // epoch millis последнего обновления
	IsFinished     bool    `json:"is_finished"`     // true если элемент дослушан до конца
}

// ProgressResponse представляет серверную запись прогресса
type ProgressResponse struct {
	ItemID         string  `json:"item_id"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Duration       float64 `json:"duration"`
	LastUpdate     int64   `json:"last_update"`
	IsFinished     bool    `json:"is_finished"`
}
