package get_insurance_days

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type InsuranceService interface {
	GetDays(ctx context.Context, doctorID string) ([]domain.InsuranceDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
