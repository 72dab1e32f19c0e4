package update_doctor_settings

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings/models"
)

// UpdateSettingsRequest HTTP request model
// Не переданные поля не меняются, пустые lunchStart/lunchEnd возвращают обед по умолчанию
type UpdateSettingsRequest struct {
	AppointmentDurationMinutes *int    `json:"appointmentDurationMinutes" validate:"omitempty,min=5,max=480"`
	WorkStart                  *string `json:"workStart"`
	WorkEnd                    *string `json:"workEnd"`
	LunchStart                 *string `json:"lunchStart"`
	LunchEnd                   *string `json:"lunchEnd"`
}

// SettingsResponse HTTP response model
type SettingsResponse struct {
	DoctorID                   string `json:"doctorId"`
	AppointmentDurationMinutes int    `json:"appointmentDurationMinutes"`
	WorkStart                  string `json:"workStart"`
	WorkEnd                    string `json:"workEnd"`
	LunchStart                 string `json:"lunchStart"`
	LunchEnd                   string `json:"lunchEnd"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(doctorID string) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		DoctorID:                   doctorID,
		AppointmentDurationMinutes: r.AppointmentDurationMinutes,
		WorkStart:                  r.WorkStart,
		WorkEnd:                    r.WorkEnd,
		LunchStart:                 r.LunchStart,
		LunchEnd:                   r.LunchEnd,
	}
}

// FromConfig конвертирует настройки в HTTP response
func FromConfig(cfg domain.WorkingHoursConfig) *SettingsResponse {
	return &SettingsResponse{
		DoctorID:                   cfg.DoctorID,
		AppointmentDurationMinutes: cfg.AppointmentDurationMinutes,
		WorkStart:                  cfg.WorkStart,
		WorkEnd:                    cfg.WorkEnd,
		LunchStart:                 cfg.LunchStart,
		LunchEnd:                   cfg.LunchEnd,
	}
}
