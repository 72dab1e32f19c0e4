package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/cache"
	settingsModels "github.com/m04kA/SMC-AgendaService/internal/service/settings/models"
)

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	CreateAppointment(ctx context.Context, appt domain.NewAppointment) (*domain.Appointment, error)
	GetInsuranceDays(ctx context.Context, doctorID string) ([]domain.InsuranceDay, error)
}

// SettingsService интерфейс сервиса настроек врача
type SettingsService interface {
	GetWorkingHours(ctx context.Context, doctorID string) (*settingsModels.SettingsResponse, error)
}

// DayDataService интерфейс загрузки и инвалидации данных дня
type DayDataService interface {
	Fetch(ctx context.Context, doctorID string, date time.Time) (*cache.DayData, error)
	Invalidate(ctx context.Context, doctorID string, date time.Time)
}

// BlockProvider интерфейс получения эффективных блокировок дня (с обедом)
type BlockProvider interface {
	EffectiveBlocks(date time.Time, cfg domain.WorkingHoursConfig, blocks []domain.ScheduleBlock) []domain.ScheduleBlock
	Location() *time.Location
}

// Locker интерфейс распределённой блокировки
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Unlock(ctx context.Context, key, token string) error
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
