package insurance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
)

// MaxPlanNameLength максимальная длина названия плана в символах
const MaxPlanNameLength = 100

// Service сервис страховых планов и закреплённых за ними дней недели
type Service struct {
	client ClinicClient
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(client ClinicClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// ListPlans получает страховые планы клиники
func (s *Service) ListPlans(ctx context.Context) ([]domain.InsurancePlan, error) {
	plans, err := s.client.ListInsurancePlans(ctx)
	if err != nil {
		return nil, s.mapClientError("ListPlans", "", err)
	}
	return plans, nil
}

// CreatePlan создаёт страховой план
func (s *Service) CreatePlan(ctx context.Context, name string) (*domain.InsurancePlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: plan name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxPlanNameLength {
		return nil, fmt.Errorf("%w: plan name is longer than %d characters", ErrInvalidInput, MaxPlanNameLength)
	}

	plan, err := s.client.CreateInsurancePlan(ctx, name)
	if err != nil {
		return nil, s.mapClientError("CreatePlan", "", err)
	}

	s.logger.Info("CreatePlan: created insurance plan id=%s, name=%s", plan.ID, plan.Name)
	return plan, nil
}

// GetDays получает неделю врача: по одному дню на каждый день недели, начиная с воскресенья
func (s *Service) GetDays(ctx context.Context, doctorID string) ([]domain.InsuranceDay, error) {
	if strings.TrimSpace(doctorID) == "" {
		return nil, fmt.Errorf("%w: doctor id is required", ErrInvalidInput)
	}

	days, err := s.client.GetInsuranceDays(ctx, doctorID)
	if err != nil {
		return nil, s.mapClientError("GetDays", doctorID, err)
	}
	return domain.FullWeek(days), nil
}

// UpdateDays заменяет неделю врача целиком
// Не переданные дни недели становятся открытыми для всех планов
func (s *Service) UpdateDays(ctx context.Context, doctorID string, days []domain.InsuranceDay) ([]domain.InsuranceDay, error) {
	s.logger.Info("UpdateDays: updating insurance days for doctor=%s", doctorID)

	// 1. Валидация входных данных
	if strings.TrimSpace(doctorID) == "" {
		return nil, fmt.Errorf("%w: doctor id is required", ErrInvalidInput)
	}
	days, err := normalizeDays(days)
	if err != nil {
		s.logger.Warn("UpdateDays: validation failed for doctor=%s: %v", doctorID, err)
		return nil, err
	}

	// 2. Планы должны существовать у клиники
	if err := s.checkPlans(ctx, days); err != nil {
		return nil, err
	}

	// 3. Отправляем неделю на бэкенд
	week := domain.FullWeek(days)
	if err := s.client.UpdateInsuranceDays(ctx, doctorID, week); err != nil {
		return nil, s.mapClientError("UpdateDays", doctorID, err)
	}

	s.logger.Info("UpdateDays: successfully updated insurance days for doctor=%s", doctorID)
	return week, nil
}

// normalizeDays проверяет дни недели и заменяет пустой ID плана на nil
func normalizeDays(days []domain.InsuranceDay) ([]domain.InsuranceDay, error) {
	seen := make(map[time.Weekday]bool, len(days))
	result := make([]domain.InsuranceDay, 0, len(days))

	for _, d := range days {
		if d.Weekday < time.Sunday || d.Weekday > time.Saturday {
			return nil, fmt.Errorf("%w: weekday %d is out of range 0..6", ErrInvalidInput, d.Weekday)
		}
		if seen[d.Weekday] {
			return nil, fmt.Errorf("%w: weekday %d is listed twice", ErrInvalidInput, d.Weekday)
		}
		seen[d.Weekday] = true

		if d.InsurancePlanID != nil && strings.TrimSpace(*d.InsurancePlanID) == "" {
			d.InsurancePlanID = nil
		}
		result = append(result, d)
	}

	return result, nil
}

func (s *Service) checkPlans(ctx context.Context, days []domain.InsuranceDay) error {
	referenced := false
	for _, d := range days {
		if d.InsurancePlanID != nil {
			referenced = true
			break
		}
	}
	if !referenced {
		return nil
	}

	plans, err := s.client.ListInsurancePlans(ctx)
	if err != nil {
		return s.mapClientError("UpdateDays", "", err)
	}

	known := make(map[string]bool, len(plans))
	for _, p := range plans {
		known[p.ID] = true
	}
	for _, d := range days {
		if d.InsurancePlanID != nil && !known[*d.InsurancePlanID] {
			s.logger.Warn("UpdateDays: unknown insurance plan id=%s", *d.InsurancePlanID)
			return fmt.Errorf("%w: id=%s", ErrUnknownPlan, *d.InsurancePlanID)
		}
	}
	return nil
}

func (s *Service) mapClientError(op, doctorID string, err error) error {
	switch {
	case errors.Is(err, clinicapi.ErrValidation):
		s.logger.Warn("%s: backend rejected request for doctor=%s: %v", op, doctorID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, clinicapi.ErrNotFound):
		s.logger.Warn("%s: doctor=%s not found", op, doctorID)
		return fmt.Errorf("%w: %v", ErrDoctorNotFound, err)
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
