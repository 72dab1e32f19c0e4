package list_doctors

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type DoctorLister interface {
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
