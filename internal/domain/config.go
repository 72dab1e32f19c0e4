package domain

import "github.com/m04kA/SMC-AgendaService/pkg/types"

// SettingsSource where a working-hours configuration came from
type SettingsSource string

const (
	SettingsSourceBackend  SettingsSource = "backend"
	SettingsSourceSnapshot SettingsSource = "snapshot"
	SettingsSourceDefaults SettingsSource = "defaults"
)

// WorkingHoursConfig per-doctor agenda configuration.
// Times of day are kept as received ("HH:MM" or "HH:MM:SS"); they are parsed
// together with the day when slots are projected.
// Empty LunchStart/LunchEnd means no lunch break.
type WorkingHoursConfig struct {
	DoctorID                   string
	AppointmentDurationMinutes int
	WorkStart                  string
	WorkEnd                    string
	LunchStart                 string
	LunchEnd                   string
}

// DefaultWorkingHours returns the configuration used when nothing else is known
func DefaultWorkingHours(doctorID string) WorkingHoursConfig {
	return WorkingHoursConfig{
		DoctorID:                   doctorID,
		AppointmentDurationMinutes: DefaultAppointmentDurationMinutes,
		WorkStart:                  DefaultWorkStart,
		WorkEnd:                    DefaultWorkEnd,
		LunchStart:                 DefaultLunchStart,
		LunchEnd:                   DefaultLunchEnd,
	}
}

// HasLunch returns true if both lunch boundaries are set
func (c *WorkingHoursConfig) HasLunch() bool {
	return c.LunchStart != "" && c.LunchEnd != ""
}

// Validate checks a configuration before it is sent to the backend.
// Configurations received from the backend are trusted and never validated.
func (c *WorkingHoursConfig) Validate() error {
	if c.AppointmentDurationMinutes < MinAppointmentDurationMinutes ||
		c.AppointmentDurationMinutes > MaxAppointmentDurationMinutes {
		return ErrInvalidDuration
	}

	start, err := types.NewTimeStringFromString(c.WorkStart)
	if err != nil {
		return ErrInvalidWorkHours
	}
	end, err := types.NewTimeStringFromString(c.WorkEnd)
	if err != nil {
		return ErrInvalidWorkHours
	}
	if !start.IsBefore(end) {
		return ErrInvalidWorkHours
	}

	if (c.LunchStart == "") != (c.LunchEnd == "") {
		return ErrInvalidLunchHours
	}
	if c.HasLunch() {
		lunchStart, err := types.NewTimeStringFromString(c.LunchStart)
		if err != nil {
			return ErrInvalidLunchHours
		}
		lunchEnd, err := types.NewTimeStringFromString(c.LunchEnd)
		if err != nil {
			return ErrInvalidLunchHours
		}
		if !lunchStart.IsBefore(lunchEnd) {
			return ErrInvalidLunchHours
		}
	}

	return nil
}
