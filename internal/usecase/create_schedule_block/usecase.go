package create_schedule_block

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// UseCase use case для блокировки интервала агенды врача
type UseCase struct {
	client   ClinicClient
	dayCache DayCache
	loc      *time.Location
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ClinicClient, dayCache DayCache, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		client:   client,
		dayCache: dayCache,
		loc:      loc,
		logger:   logger,
	}
}

// Execute выполняет use case создания блокировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateScheduleBlock: doctor=%s, date=%s, %s-%s",
		req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateScheduleBlock: validation failed: %v", err)
		return nil, err
	}

	// 2. Границы блокировки в часовом поясе клиники
	startAt, err := types.CombineDateAndTime(req.Date, string(req.StartTime), uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endAt, err := types.CombineDateAndTime(req.Date, string(req.EndTime), uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Создаём блокировку в бэкенде
	block, err := uc.client.CreateScheduleBlock(ctx, domain.NewScheduleBlock{
		DoctorID: req.DoctorID,
		StartAt:  startAt,
		EndAt:    endAt,
		Reason:   normalizeReason(req.Reason),
	})
	if err != nil {
		return nil, uc.mapError(err)
	}

	// 4. Сбрасываем кэш дня
	uc.dayCache.Invalidate(ctx, req.DoctorID, startAt)

	uc.logger.Info("CreateScheduleBlock: created block id=%s for doctor=%s", block.ID, req.DoctorID)

	return &Response{Block: *block}, nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, clinicapi.ErrUnauthorized):
		uc.logger.Warn("CreateScheduleBlock: unauthorized: %v", err)
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, clinicapi.ErrNotFound):
		uc.logger.Warn("CreateScheduleBlock: doctor not found: %v", err)
		return fmt.Errorf("%w: %v", ErrDoctorNotFound, err)
	case errors.Is(err, clinicapi.ErrValidation):
		uc.logger.Warn("CreateScheduleBlock: rejected by backend: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, clinicapi.ErrUnavailable):
		uc.logger.Error("CreateScheduleBlock: backend unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		uc.logger.Error("CreateScheduleBlock: failed to create block: %v", err)
		return fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
	}
}
