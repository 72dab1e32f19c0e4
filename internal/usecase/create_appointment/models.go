package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса создания приёма
type Request struct {
	DoctorID        string
	PatientID       string
	Date            time.Time        // День приёма
	StartTime       types.TimeString // Время начала в формате HH:MM
	Status          string           // Статус для бэкенда, по умолчанию AGENDADA
	InsurancePlanID *string
}

// Response модель созданного приёма
type Response struct {
	Appointment domain.Appointment
}
