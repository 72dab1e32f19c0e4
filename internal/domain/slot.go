package domain

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// SlotStatus classification of a projected slot
type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "AVAILABLE"
	SlotStatusAppointment SlotStatus = "APPOINTMENT"
	SlotStatusBlocked     SlotStatus = "BLOCKED"
)

// Slot a fixed-duration window of a doctor's working day.
// At most one of Appointment and Block is set, matching Status.
type Slot struct {
	ID              string
	TimeLabel       types.TimeString
	Start           time.Time
	DurationMinutes int
	Status          SlotStatus
	Appointment     *Appointment
	Block           *ScheduleBlock
}

// End returns the end of the slot window
func (s *Slot) End() time.Time {
	return s.Start.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// IsAvailable returns true if the slot can be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// Period display group derived from a slot's start hour
type Period string

const (
	PeriodMorning   Period = "Morning"
	PeriodAfternoon Period = "Afternoon"
	PeriodEvening   Period = "Evening"
	PeriodDawn      Period = "Dawn"
)

// PeriodForHour returns the period of an hour of day.
// 06-11 Morning, 12-17 Afternoon, 18-23 Evening, anything else Dawn.
func PeriodForHour(hour int) Period {
	switch {
	case hour >= 6 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 18:
		return PeriodAfternoon
	case hour >= 18 && hour < 24:
		return PeriodEvening
	default:
		return PeriodDawn
	}
}

// SlotRowKind kind of a display row
type SlotRowKind string

const (
	SlotRowHeader SlotRowKind = "HEADER"
	SlotRowItem   SlotRowKind = "ITEM"
)

// SlotRow either a period header (Title set) or an item wrapping a slot
type SlotRow struct {
	Kind  SlotRowKind
	ID    string
	Title Period
	Slot  *Slot
}
