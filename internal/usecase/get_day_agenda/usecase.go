package get_day_agenda

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/daydata"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings"
	"github.com/m04kA/SMC-AgendaService/internal/service/slots"
)

// UseCase use case для получения агенды врача на день
type UseCase struct {
	settings  SettingsService
	dayData   DayDataService
	insurance InsuranceClient
	projector SlotProjector
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsService,
	dayData DayDataService,
	insurance InsuranceClient,
	projector SlotProjector,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:  settings,
		dayData:   dayData,
		insurance: insurance,
		projector: projector,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case получения агенды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAgenda: doctor=%s, date=%s", req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAgenda: validation failed: %v", err)
		return nil, err
	}

	// 2. Настройки рабочего дня (бэкенд, снимок или значения по умолчанию)
	settingsResp, err := uc.settings.GetWorkingHours(ctx, req.DoctorID)
	if err != nil {
		return nil, uc.mapError("failed to get settings", err)
	}
	if settingsResp.Source != domain.SettingsSourceBackend {
		uc.logger.Warn("GetDayAgenda: using %s settings for doctor=%s", settingsResp.Source, req.DoctorID)
	}

	// 3. Приёмы и блокировки дня
	// Если бэкенд не подтвердил доступ к настройкам, кэш не используется
	loadDay := uc.dayData.Get
	if settingsResp.Source != domain.SettingsSourceBackend {
		loadDay = uc.dayData.Fetch
	}
	day, err := loadDay(ctx, req.DoctorID, req.Date)
	if err != nil {
		return nil, uc.mapError("failed to get day data", err)
	}

	// 4. План страховки для дня недели (не обязателен для построения агенды)
	var insurancePlanID *string
	days, err := uc.insurance.GetInsuranceDays(ctx, req.DoctorID)
	if err != nil {
		uc.logger.Warn("GetDayAgenda: failed to get insurance days for doctor=%s: %v", req.DoctorID, err)
	} else {
		insurancePlanID = domain.InsurancePlanFor(days, req.Date)
	}

	// 5. Строим слоты и группируем по периодам
	projected := uc.projector.Project(req.Date, settingsResp.Config, day.Appointments, day.Blocks)
	counts := slots.CountByStatus(projected)
	for status, n := range counts {
		uc.metrics.AddSlots(string(status), n)
	}

	uc.logger.Info("GetDayAgenda: projected %d slots for doctor=%s, date=%s (available=%d, appointments=%d, blocked=%d)",
		len(projected), req.DoctorID, req.Date.Format(domain.DateFormat),
		counts[domain.SlotStatusAvailable], counts[domain.SlotStatusAppointment], counts[domain.SlotStatusBlocked])

	return &Response{
		DoctorID:        req.DoctorID,
		Date:            req.Date,
		Config:          settingsResp.Config,
		SettingsSource:  settingsResp.Source,
		InsurancePlanID: insurancePlanID,
		Slots:           projected,
		Rows:            slots.GroupByPeriod(projected),
		Counts:          counts,
	}, nil
}

func (uc *UseCase) mapError(msg string, err error) error {
	switch {
	case errors.Is(err, settings.ErrUnauthorized), errors.Is(err, daydata.ErrUnauthorized):
		uc.logger.Warn("GetDayAgenda: %s: %v", msg, err)
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, daydata.ErrDoctorNotFound):
		uc.logger.Warn("GetDayAgenda: %s: %v", msg, err)
		return fmt.Errorf("%w: %v", ErrDoctorNotFound, err)
	case errors.Is(err, daydata.ErrBackendUnavailable):
		uc.logger.Error("GetDayAgenda: %s: %v", msg, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		uc.logger.Error("GetDayAgenda: %s: %v", msg, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
	}
}
