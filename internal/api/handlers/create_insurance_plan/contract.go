package create_insurance_plan

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type InsuranceService interface {
	CreatePlan(ctx context.Context, name string) (*domain.InsurancePlan, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
