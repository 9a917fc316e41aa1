package validation

import (
	"fmt"
	"math"
	"regexp"
)

// ItemIDPattern определяет допустимый формат идентификатора элемента библиотеки
// Только латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 1-64 символа
var ItemIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

const (
	// MaxItemIDLen максимальная длина идентификатора элемента
	MaxItemIDLen = 64
)

// ValidateItemID проверяет, что идентификатор элемента соответствует требованиям
// Формат: латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 1-64 символа
func ValidateItemID(itemID string) error {
	if itemID == "" {
		return fmt.Errorf("item id cannot be empty")
	}

	if len(itemID) > MaxItemIDLen {
		return fmt.Errorf("item id must not exceed %d characters", MaxItemIDLen)
	}

	if !ItemIDPattern.MatchString(itemID) {
		return fmt.Errorf("item id can only contain letters (a-z, A-Z), numbers (0-9), hyphens (-), and underscores (_)")
	}

	return nil
}

// ValidateElapsedSeconds проверяет позицию воспроизведения
// Позиция должна быть конечным неотрицательным числом
func ValidateElapsedSeconds(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Errorf("elapsed seconds must be a finite number")
	}

	if seconds < 0 {
		return fmt.Errorf("elapsed seconds cannot be negative")
	}

	return nil
}

// ValidateDuration проверяет длительность элемента
// Ноль означает неизвестную длительность и допустим
func ValidateDuration(duration float64) error {
	if math.IsNaN(duration) || math.IsInf(duration, 0) {
		return fmt.Errorf("duration must be a finite number")
	}

	if duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}

	return nil
}
