package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек врача
// Все поля опциональны - обновляются только переданные значения
// Пустые LunchStart и LunchEnd возвращают обед по умолчанию
type UpdateSettingsRequest struct {
	DoctorID                   string
	AppointmentDurationMinutes *int
	WorkStart                  *string
	WorkEnd                    *string
	LunchStart                 *string
	LunchEnd                   *string
}

// ApplyToConfig применяет переданные поля к конфигурации
func (r *UpdateSettingsRequest) ApplyToConfig(cfg *domain.WorkingHoursConfig) {
	if r.AppointmentDurationMinutes != nil {
		cfg.AppointmentDurationMinutes = *r.AppointmentDurationMinutes
	}
	if r.WorkStart != nil {
		cfg.WorkStart = *r.WorkStart
	}
	if r.WorkEnd != nil {
		cfg.WorkEnd = *r.WorkEnd
	}
	if r.LunchStart != nil {
		cfg.LunchStart = orDefault(*r.LunchStart, domain.DefaultLunchStart)
	}
	if r.LunchEnd != nil {
		cfg.LunchEnd = orDefault(*r.LunchEnd, domain.DefaultLunchEnd)
	}
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// SettingsResponse настройки врача и их источник
type SettingsResponse struct {
	Config    domain.WorkingHoursConfig
	Source    domain.SettingsSource
	UpdatedAt *time.Time // время снимка, только для Source == snapshot
}
