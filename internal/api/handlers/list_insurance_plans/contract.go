package list_insurance_plans

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type InsuranceService interface {
	ListPlans(ctx context.Context) ([]domain.InsurancePlan, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
