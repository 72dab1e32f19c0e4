package get_day_agenda

import (
	"context"

	getDayAgenda "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_agenda"
)

type GetDayAgendaUseCase interface {
	Execute(ctx context.Context, req *getDayAgenda.Request) (*getDayAgenda.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
