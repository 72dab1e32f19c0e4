package clinicapi

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Config настройки клиента
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	ServiceToken string // используется, если в контексте запроса нет токена

	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// DoctorDTO врач в ответе /doctors
type DoctorDTO struct {
	ID        types.FlexString `json:"id"`
	Name      *string          `json:"name"`
	Email     *string          `json:"email"`
	Specialty *string          `json:"specialty"`
}

// DoctorSettingsDTO рабочие часы в ответе /doctor-settings
// Поля приходят строками или числами, любое может отсутствовать
type DoctorSettingsDTO struct {
	DoctorID                   types.FlexString `json:"doctor_id"`
	AppointmentDurationMinutes types.FlexInt    `json:"appointment_duration_minutes"`
	WorkStartTime              *string          `json:"work_start_time"`
	WorkEndTime                *string          `json:"work_end_time"`
	LunchStartTime             *string          `json:"lunch_start_time"`
	LunchEndTime               *string          `json:"lunch_end_time"`
}

// AppointmentDTO приём в ответе /appointments
type AppointmentDTO struct {
	ID              types.FlexString `json:"id"`
	PatientID       types.FlexString `json:"patient_id"`
	PatientName     *string          `json:"patient_name"`
	DoctorID        types.FlexString `json:"doctor_id"`
	ScheduledAt     *string          `json:"scheduled_at"`
	DurationMinutes types.FlexInt    `json:"duration_minutes"`
	Status          *string          `json:"status"`
	InsurancePlanID types.FlexString `json:"insurance_plan_id"`
}

// ScheduleBlockDTO блокировка в ответе /schedule-blocks
type ScheduleBlockDTO struct {
	ID       types.FlexString `json:"id"`
	DoctorID types.FlexString `json:"doctor_id"`
	StartAt  *string          `json:"start_at"`
	EndAt    *string          `json:"end_at"`
	Reason   *string          `json:"reason"`
}

// InsuranceDayDTO день недели, закреплённый за страховым планом
type InsuranceDayDTO struct {
	Weekday         types.FlexInt    `json:"weekday"`
	InsurancePlanID types.FlexString `json:"insurance_plan_id"`
}

// InsurancePlanDTO план в ответе /insurance-plans
type InsurancePlanDTO struct {
	ID     types.FlexString `json:"id"`
	Name   *string          `json:"name"`
	Active types.FlexInt    `json:"active"`
}

// CreateInsurancePlanRequest тело POST /insurance-plans
type CreateInsurancePlanRequest struct {
	Name string `json:"name"`
}

// InsuranceDayRequest день недели в теле PUT /doctor-insurance-days
type InsuranceDayRequest struct {
	Weekday         int     `json:"weekday"`
	InsurancePlanID *string `json:"insurance_plan_id"`
}

// UpdateInsuranceDaysRequest тело PUT /doctor-insurance-days, неделя заменяется целиком
type UpdateInsuranceDaysRequest struct {
	Days []InsuranceDayRequest `json:"days"`
}

// UpdateDoctorSettingsRequest тело PUT /doctor-settings
type UpdateDoctorSettingsRequest struct {
	AppointmentDurationMinutes int    `json:"appointment_duration_minutes"`
	WorkStartTime              string `json:"work_start_time"`
	WorkEndTime                string `json:"work_end_time"`
	LunchStartTime             string `json:"lunch_start_time"`
	LunchEndTime               string `json:"lunch_end_time"`
}

// CreateAppointmentRequest тело POST /appointments
type CreateAppointmentRequest struct {
	PatientID       string  `json:"patient_id"`
	DoctorID        string  `json:"doctor_id"`
	ScheduledAt     string  `json:"scheduled_at"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	InsurancePlanID *string `json:"insurance_plan_id"`
}

// CreateScheduleBlockRequest тело POST /schedule-blocks
type CreateScheduleBlockRequest struct {
	DoctorID string `json:"doctor_id"`
	StartAt  string `json:"start_at"`
	EndAt    string `json:"end_at"`
	Reason   string `json:"reason"`
}

// ErrorResponse тело ошибки бэкенда
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
