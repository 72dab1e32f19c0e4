package create_schedule_block

import (
	"context"

	createScheduleBlock "github.com/m04kA/SMC-AgendaService/internal/usecase/create_schedule_block"
)

type CreateScheduleBlockUseCase interface {
	Execute(ctx context.Context, req *createScheduleBlock.Request) (*createScheduleBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
