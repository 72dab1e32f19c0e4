package daydata

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/cache"
)

// ClinicClient интерфейс клиента API клиники
type ClinicClient interface {
	ListAppointments(ctx context.Context, doctorID string, date time.Time) ([]domain.Appointment, error)
	ListScheduleBlocks(ctx context.Context, doctorID string, date time.Time) ([]domain.ScheduleBlock, error)
}

// Cache интерфейс кэша данных дня
type Cache interface {
	Generation(ctx context.Context, doctorID, date string) (int64, error)
	GetDay(ctx context.Context, scope, doctorID, date string) (*cache.DayData, bool, error)
	SetDay(ctx context.Context, scope, doctorID, date string, data cache.DayData) error
	InvalidateDay(ctx context.Context, doctorID, date string) error
}

// Metrics интерфейс метрик кэша
type Metrics interface {
	CacheLookup(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
