package sync

import "github.com/iudanet/shelfsync/internal/models"

// Decision описывает исход разрешения конфликта между локальной
// и серверной записями прогресса.
type Decision int

const (
	// KeepLocalAndUpload - локальная запись не старее серверной,
	// её нужно отправить на сервер
	KeepLocalAndUpload Decision = iota

	// AdoptRemote - серверная запись новее, локальную нужно
	// перезаписать серверной без загрузки
	AdoptRemote
)

// String возвращает текстовое представление решения
func (d Decision) String() string {
	switch d {
	case KeepLocalAndUpload:
		return "keep_local_and_upload"
	case AdoptRemote:
		return "adopt_remote"
	default:
		return "unknown"
	}
}

// Resolve применяет правило Last-Write-Wins к паре записей одного элемента.
// Чистая функция без побочных эффектов, определена для любых timestamps:
// сервер побеждает только при строго большем LastUpdate.
func Resolve(local, remote *models.ProgressRecord) Decision {
	if remote.IsNewerThan(local) {
		return AdoptRemote
	}
	return KeepLocalAndUpload
}
