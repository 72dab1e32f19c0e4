package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	PatientID       string  `json:"patientId" validate:"required"`
	Date            string  `json:"date" validate:"required"`      // "2026-03-10"
	StartTime       string  `json:"startTime" validate:"required"` // "10:00"
	Status          string  `json:"status,omitempty"`
	InsurancePlanID *string `json:"insurancePlanId,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	PatientID       string  `json:"patientId"`
	DoctorID        string  `json:"doctorId"`
	ScheduledAt     string  `json:"scheduledAt,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Status          string  `json:"status"`
	InsurancePlanID *string `json:"insurancePlanId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(doctorID string, loc *time.Location) (*createAppointment.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		DoctorID:        doctorID,
		PatientID:       r.PatientID,
		Date:            date,
		StartTime:       startTime,
		Status:          r.Status,
		InsurancePlanID: r.InsurancePlanID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	a := resp.Appointment
	out := &AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		InsurancePlanID: a.InsurancePlanID,
	}
	if a.ScheduledAt != nil {
		out.ScheduledAt = types.FormatWireDateTime(*a.ScheduledAt)
	}
	return out
}
