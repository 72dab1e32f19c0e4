package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings/models"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Service сервис настроек рабочего дня врачей
type Service struct {
	client    ClinicClient
	snapshots SnapshotRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
// snapshots может быть nil, тогда при недоступности бэкенда сразу используются значения по умолчанию
func NewService(client ClinicClient, snapshots SnapshotRepository, logger Logger) *Service {
	return &Service{
		client:    client,
		snapshots: snapshots,
		logger:    logger,
	}
}

// GetWorkingHours получает настройки врача
// Порядок: бэкенд -> последний сохранённый снимок -> значения по умолчанию
// Отказ в авторизации не маскируется
func (s *Service) GetWorkingHours(ctx context.Context, doctorID string) (*models.SettingsResponse, error) {
	// 1. Бэкенд
	cfg, err := s.client.GetDoctorSettings(ctx, doctorID)
	if err == nil {
		s.saveSnapshot(ctx, *cfg)
		return &models.SettingsResponse{Config: *cfg, Source: domain.SettingsSourceBackend}, nil
	}
	if errors.Is(err, clinicapi.ErrUnauthorized) {
		s.logger.Warn("GetWorkingHours: backend rejected token for doctor=%s", doctorID)
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	// 2. Снимок
	s.logger.Warn("GetWorkingHours: backend settings unavailable for doctor=%s, applying graceful degradation: %v", doctorID, err)
	if s.snapshots != nil {
		snapshot, snapErr := s.snapshots.Get(ctx, doctorID)
		switch {
		case snapErr == nil:
			s.logger.Info("GetWorkingHours: using snapshot for doctor=%s from %s", doctorID, snapshot.UpdatedAt)
			updatedAt := snapshot.UpdatedAt
			return &models.SettingsResponse{
				Config:    snapshot.Config,
				Source:    domain.SettingsSourceSnapshot,
				UpdatedAt: &updatedAt,
			}, nil
		case errors.Is(snapErr, settingsRepo.ErrSnapshotNotFound):
			s.logger.Info("GetWorkingHours: no snapshot for doctor=%s", doctorID)
		default:
			s.logger.Error("GetWorkingHours: failed to read snapshot for doctor=%s: %v", doctorID, snapErr)
		}
	}

	// 3. Значения по умолчанию
	return &models.SettingsResponse{
		Config: domain.DefaultWorkingHours(doctorID),
		Source: domain.SettingsSourceDefaults,
	}, nil
}

// Update обновляет настройки врача на бэкенде
// Поддерживает частичное обновление поверх текущих настроек
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for doctor=%s", req.DoctorID)

	if req.DoctorID == "" {
		return nil, fmt.Errorf("%w: doctor id is required", ErrInvalidInput)
	}

	// 1. Текущие настройки
	current, err := s.GetWorkingHours(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения и валидируем
	cfg := current.Config
	req.ApplyToConfig(&cfg)

	if err := cfg.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for doctor=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	cfg = normalizeTimes(cfg)

	// 3. Отправляем на бэкенд
	if err := s.client.UpdateDoctorSettings(ctx, cfg); err != nil {
		return nil, s.mapClientError("Update", req.DoctorID, err)
	}

	// 4. Обновляем снимок
	s.saveSnapshot(ctx, cfg)

	s.logger.Info("Update: successfully updated settings for doctor=%s", req.DoctorID)
	return &models.SettingsResponse{Config: cfg, Source: domain.SettingsSourceBackend}, nil
}

func (s *Service) saveSnapshot(ctx context.Context, cfg domain.WorkingHoursConfig) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, cfg); err != nil {
		s.logger.Warn("saveSnapshot: failed to store snapshot for doctor=%s: %v", cfg.DoctorID, err)
	}
}

func (s *Service) mapClientError(op, doctorID string, err error) error {
	switch {
	case errors.Is(err, clinicapi.ErrValidation):
		s.logger.Warn("%s: backend rejected settings for doctor=%s: %v", op, doctorID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, clinicapi.ErrNotFound):
		s.logger.Warn("%s: doctor=%s not found", op, doctorID)
		return ErrDoctorNotFound
	case errors.Is(err, clinicapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, clinicapi.ErrUnavailable):
		s.logger.Error("%s: backend unavailable for doctor=%s: %v", op, doctorID, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		s.logger.Error("%s: backend error for doctor=%s: %v", op, doctorID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// normalizeTimes приводит времена к виду HH:MM:SS, который отдаёт бэкенд
// Validate уже проверил, что времена разбираются
func normalizeTimes(cfg domain.WorkingHoursConfig) domain.WorkingHoursConfig {
	normalize := func(s string) string {
		if s == "" {
			return s
		}
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return s
		}
		return t.WithSeconds()
	}

	cfg.WorkStart = normalize(cfg.WorkStart)
	cfg.WorkEnd = normalize(cfg.WorkEnd)
	cfg.LunchStart = normalize(cfg.LunchStart)
	cfg.LunchEnd = normalize(cfg.LunchEnd)
	return cfg
}
