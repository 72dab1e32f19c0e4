package get_doctor_settings

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/settings/models"
)

type SettingsService interface {
	GetWorkingHours(ctx context.Context, doctorID string) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
