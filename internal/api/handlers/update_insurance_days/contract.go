package update_insurance_days

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type InsuranceService interface {
	UpdateDays(ctx context.Context, doctorID string, days []domain.InsuranceDay) ([]domain.InsuranceDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
