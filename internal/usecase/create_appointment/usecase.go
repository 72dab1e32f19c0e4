package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-AgendaService/internal/service/daydata"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings"
	"github.com/m04kA/SMC-AgendaService/internal/service/slots"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// UseCase use case для создания приёма
type UseCase struct {
	client       ClinicClient
	settings     SettingsService
	dayData      DayDataService
	blocks       BlockProvider
	locker       Locker
	lockTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client ClinicClient,
	settings SettingsService,
	dayData DayDataService,
	blocks BlockProvider,
	locker Locker,
	lockTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		settings:     settings,
		dayData:      dayData,
		blocks:       blocks,
		locker:       locker,
		lockTTL:      lockTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания приёма
// Агенда врача на день блокируется на время проверки пересечений и записи в бэкенд
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: doctor=%s, patient=%s, date=%s, time=%s",
		req.DoctorID, req.PatientID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Время начала приёма в часовом поясе клиники
	loc := uc.blocks.Location()
	start, err := types.CombineDateAndTime(req.Date, string(req.StartTime), loc)
	if err != nil {
		uc.logger.Warn("CreateAppointment: invalid start time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateNotInPast(start, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 3. Настройки рабочего дня
	settingsResp, err := uc.settings.GetWorkingHours(ctx, req.DoctorID)
	if err != nil {
		return nil, uc.mapError("failed to get settings", err)
	}
	cfg := settingsResp.Config
	end := start.Add(time.Duration(cfg.AppointmentDurationMinutes) * time.Minute)

	// 4. Проверяем закрепление дня недели за планом страховки
	if err := uc.checkInsurance(ctx, req, start); err != nil {
		return nil, err
	}

	// 5. Блокируем агенду врача на этот день
	lockKey := fmt.Sprintf("agenda:%s:%s", req.DoctorID, types.DateKey(start))
	token, ok, err := uc.locker.Lock(ctx, lockKey, uc.lockTTL)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to acquire lock %s: %v", lockKey, err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	if !ok {
		uc.logger.Warn("CreateAppointment: lock %s is held by another request", lockKey)
		return nil, ErrLocked
	}
	defer func() {
		// Контекст запроса может быть уже отменён, освобождаем блокировку независимо от него
		if err := uc.locker.Unlock(context.WithoutCancel(ctx), lockKey, token); err != nil {
			uc.logger.Warn("CreateAppointment: failed to release lock %s: %v", lockKey, err)
		}
	}()

	// 6. Свежие данные дня в обход кэша
	day, err := uc.dayData.Fetch(ctx, req.DoctorID, start)
	if err != nil {
		return nil, uc.mapError("failed to fetch day data", err)
	}

	// 7. Проверяем пересечения с приёмами и блокировками (включая обед)
	blocks := uc.blocks.EffectiveBlocks(start, cfg, day.Blocks)
	appt, block := slots.FindConflict(start, end, cfg.AppointmentDurationMinutes, day.Appointments, blocks)
	if appt != nil {
		uc.logger.Warn("CreateAppointment: %s overlaps appointment id=%s", req.StartTime, appt.ID)
		return nil, fmt.Errorf("%w: overlaps appointment %s", ErrSlotNotAvailable, appt.ID)
	}
	if block != nil {
		uc.logger.Warn("CreateAppointment: %s overlaps block id=%s", req.StartTime, block.ID)
		return nil, fmt.Errorf("%w: overlaps block %s", ErrSlotNotAvailable, block.ID)
	}

	// 8. Создаём приём в бэкенде
	status := req.Status
	if status == "" {
		status = domain.BackendStatusScheduled
	}
	created, err := uc.client.CreateAppointment(ctx, domain.NewAppointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		ScheduledAt:     start,
		DurationMinutes: cfg.AppointmentDurationMinutes,
		Status:          status,
		InsurancePlanID: req.InsurancePlanID,
	})
	if err != nil {
		return nil, uc.mapError("failed to create appointment", err)
	}

	// 9. Сбрасываем кэш дня
	uc.dayData.Invalidate(ctx, req.DoctorID, start)

	uc.logger.Info("CreateAppointment: created appointment id=%s for doctor=%s at %s",
		created.ID, req.DoctorID, types.FormatWireDateTime(start))

	return &Response{Appointment: *created}, nil
}

// checkInsurance проверяет, что запрос разрешён планом, закреплённым за днём недели
func (uc *UseCase) checkInsurance(ctx context.Context, req *Request, start time.Time) error {
	days, err := uc.client.GetInsuranceDays(ctx, req.DoctorID)
	if err != nil {
		// Без расписания страховок запись не ограничивается
		uc.logger.Warn("CreateAppointment: failed to get insurance days for doctor=%s: %v", req.DoctorID, err)
		return nil
	}

	exclusive := domain.InsurancePlanFor(days, start)
	if !domain.AllowsPlan(exclusive, req.InsurancePlanID) {
		uc.logger.Warn("CreateAppointment: %s is restricted to insurance plan %s", start.Weekday(), *exclusive)
		return fmt.Errorf("%w: %s requires plan %s", ErrInsuranceDayRestricted, start.Weekday(), *exclusive)
	}

	return nil
}

func (uc *UseCase) mapError(msg string, err error) error {
	switch {
	case errors.Is(err, settings.ErrUnauthorized),
		errors.Is(err, daydata.ErrUnauthorized),
		errors.Is(err, clinicapi.ErrUnauthorized):
		uc.logger.Warn("CreateAppointment: %s: %v", msg, err)
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, daydata.ErrDoctorNotFound), errors.Is(err, clinicapi.ErrNotFound):
		uc.logger.Warn("CreateAppointment: %s: %v", msg, err)
		return fmt.Errorf("%w: %v", ErrDoctorNotFound, err)
	case errors.Is(err, clinicapi.ErrValidation):
		uc.logger.Warn("CreateAppointment: %s: %v", msg, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, daydata.ErrBackendUnavailable), errors.Is(err, clinicapi.ErrUnavailable):
		uc.logger.Error("CreateAppointment: %s: %v", msg, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		uc.logger.Error("CreateAppointment: %s: %v", msg, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
	}
}
