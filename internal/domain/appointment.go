package domain

import (
	"strings"
	"time"
)

// AppointmentStatus normalized appointment status
type AppointmentStatus string

const (
	AppointmentStatusConfirmed   AppointmentStatus = "CONFIRMED"
	AppointmentStatusScheduled   AppointmentStatus = "SCHEDULED"
	AppointmentStatusCancelled   AppointmentStatus = "CANCELLED"
	AppointmentStatusRescheduled AppointmentStatus = "RESCHEDULED"
	AppointmentStatusDone        AppointmentStatus = "DONE"
)

// BackendStatusScheduled status sent to the backend for new appointments
const BackendStatusScheduled = "AGENDADA"

var appointmentStatusAliases = map[string]AppointmentStatus{
	"CONFIRMED":   AppointmentStatusConfirmed,
	"CONFIRMADA":  AppointmentStatusConfirmed,
	"SCHEDULED":   AppointmentStatusScheduled,
	"AGENDADA":    AppointmentStatusScheduled,
	"CANCELLED":   AppointmentStatusCancelled,
	"CANCELED":    AppointmentStatusCancelled,
	"CANCELADA":   AppointmentStatusCancelled,
	"RESCHEDULED": AppointmentStatusRescheduled,
	"REAGENDADA":  AppointmentStatusRescheduled,
	"DONE":        AppointmentStatusDone,
	"REALIZADA":   AppointmentStatusDone,
}

// NormalizeAppointmentStatus maps a free-form backend status to a known one.
// Empty and unknown values become SCHEDULED.
func NormalizeAppointmentStatus(raw string) AppointmentStatus {
	if status, ok := appointmentStatusAliases[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return status
	}
	return AppointmentStatusScheduled
}

// Appointment a booked visit as known to the backend.
// ScheduledAt is nil when the backend value was missing or unparseable.
type Appointment struct {
	ID              string
	PatientID       string
	PatientName     string
	DoctorID        string
	ScheduledAt     *time.Time
	DurationMinutes *int
	Status          AppointmentStatus
	InsurancePlanID *string
}

// Interval returns the occupied window of the appointment.
// defaultDuration is used when the appointment has no own duration.
func (a *Appointment) Interval(defaultDuration int) (start, end time.Time, ok bool) {
	if a.ScheduledAt == nil {
		return time.Time{}, time.Time{}, false
	}
	duration := defaultDuration
	if a.DurationMinutes != nil {
		duration = *a.DurationMinutes
	}
	start = *a.ScheduledAt
	return start, start.Add(time.Duration(duration) * time.Minute), true
}

// IsCancelled returns true if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// NewAppointment data needed to book an appointment
type NewAppointment struct {
	PatientID       string
	DoctorID        string
	ScheduledAt     time.Time
	DurationMinutes int
	Status          string
	InsurancePlanID *string
}
