package create_schedule_block

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	CreateScheduleBlock(ctx context.Context, block domain.NewScheduleBlock) (*domain.ScheduleBlock, error)
}

// DayCache интерфейс инвалидации данных дня
type DayCache interface {
	Invalidate(ctx context.Context, doctorID string, date time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
