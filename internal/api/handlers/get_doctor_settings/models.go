package get_doctor_settings

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/service/settings/models"
)

// SettingsResponse HTTP response model
type SettingsResponse struct {
	DoctorID                   string  `json:"doctorId"`
	AppointmentDurationMinutes int     `json:"appointmentDurationMinutes"`
	WorkStart                  string  `json:"workStart"`
	WorkEnd                    string  `json:"workEnd"`
	LunchStart                 string  `json:"lunchStart"`
	LunchEnd                   string  `json:"lunchEnd"`
	Source                     string  `json:"source"`
	SnapshotUpdatedAt          *string `json:"snapshotUpdatedAt,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SettingsResponse) *SettingsResponse {
	out := &SettingsResponse{
		DoctorID:                   resp.Config.DoctorID,
		AppointmentDurationMinutes: resp.Config.AppointmentDurationMinutes,
		WorkStart:                  resp.Config.WorkStart,
		WorkEnd:                    resp.Config.WorkEnd,
		LunchStart:                 resp.Config.LunchStart,
		LunchEnd:                   resp.Config.LunchEnd,
		Source:                     string(resp.Source),
	}
	if resp.UpdatedAt != nil {
		updatedAt := resp.UpdatedAt.Format(time.RFC3339)
		out.SnapshotUpdatedAt = &updatedAt
	}
	return out
}
