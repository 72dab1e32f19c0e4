package cache

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// DayData данные дня врача, полученные от бэкенда
type DayData struct {
	Appointments []domain.Appointment   `json:"appointments"`
	Blocks       []domain.ScheduleBlock `json:"blocks"`
	FetchedAt    time.Time              `json:"fetched_at"`
	// Generation поколение дня, под которым данные были загружены
	Generation int64 `json:"generation"`
}

// Cache кэш данных дня
// Записи разделены по области вызывающего (scope), поколение дня общее для всех областей.
// GetDay отдаёт запись только если её поколение совпадает с текущим.
type Cache interface {
	Generation(ctx context.Context, doctorID, date string) (int64, error)
	GetDay(ctx context.Context, scope, doctorID, date string) (*DayData, bool, error)
	SetDay(ctx context.Context, scope, doctorID, date string, data DayData) error
	InvalidateDay(ctx context.Context, doctorID, date string) error
}

// dayKey ключ записи дня в области scope
func dayKey(scope, doctorID, date string) string {
	return "agenda:day:" + doctorID + ":" + date + ":" + scope
}

// generationKey ключ счётчика поколений дня
func generationKey(doctorID, date string) string {
	return "agenda:gen:" + doctorID + ":" + date
}
