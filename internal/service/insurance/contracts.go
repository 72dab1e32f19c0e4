package insurance

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ClinicClient интерфейс клиента API клиники
type ClinicClient interface {
	ListInsurancePlans(ctx context.Context) ([]domain.InsurancePlan, error)
	CreateInsurancePlan(ctx context.Context, name string) (*domain.InsurancePlan, error)
	GetInsuranceDays(ctx context.Context, doctorID string) ([]domain.InsuranceDay, error)
	UpdateInsuranceDays(ctx context.Context, doctorID string, days []domain.InsuranceDay) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
