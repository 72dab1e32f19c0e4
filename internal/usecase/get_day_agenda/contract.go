package get_day_agenda

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/cache"
	settingsModels "github.com/m04kA/SMC-AgendaService/internal/service/settings/models"
)

// SettingsService интерфейс сервиса настроек врача
type SettingsService interface {
	GetWorkingHours(ctx context.Context, doctorID string) (*settingsModels.SettingsResponse, error)
}

// DayDataService интерфейс загрузки приёмов и блокировок дня
type DayDataService interface {
	Get(ctx context.Context, doctorID string, date time.Time) (*cache.DayData, error)
	Fetch(ctx context.Context, doctorID string, date time.Time) (*cache.DayData, error)
}

// InsuranceClient интерфейс получения дней страховых планов
type InsuranceClient interface {
	GetInsuranceDays(ctx context.Context, doctorID string) ([]domain.InsuranceDay, error)
}

// SlotProjector интерфейс построения слотов дня
type SlotProjector interface {
	Project(date time.Time, cfg domain.WorkingHoursConfig, appointments []domain.Appointment, blocks []domain.ScheduleBlock) []domain.Slot
}

// Metrics интерфейс метрик построенных слотов
type Metrics interface {
	AddSlots(status string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
