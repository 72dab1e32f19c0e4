package settings

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/settings"
)

// ClinicClient интерфейс клиента API клиники
type ClinicClient interface {
	GetDoctorSettings(ctx context.Context, doctorID string) (*domain.WorkingHoursConfig, error)
	UpdateDoctorSettings(ctx context.Context, cfg domain.WorkingHoursConfig) error
}

// SnapshotRepository интерфейс хранилища последних известных настроек
type SnapshotRepository interface {
	Save(ctx context.Context, cfg domain.WorkingHoursConfig) error
	Get(ctx context.Context, doctorID string) (*settingsRepo.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
