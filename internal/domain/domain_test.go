package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAppointmentStatus(t *testing.T) {
	tests := map[string]AppointmentStatus{
		"CONFIRMADA":  AppointmentStatusConfirmed,
		"confirmed":   AppointmentStatusConfirmed,
		" agendada ":  AppointmentStatusScheduled,
		"CANCELADA":   AppointmentStatusCancelled,
		"canceled":    AppointmentStatusCancelled,
		"REAGENDADA":  AppointmentStatusRescheduled,
		"Realizada":   AppointmentStatusDone,
		"":            AppointmentStatusScheduled,
		"no-show-ish": AppointmentStatusScheduled,
	}

	for raw, want := range tests {
		assert.Equal(t, want, NormalizeAppointmentStatus(raw), "raw %q", raw)
	}
}

func TestAppointment_Interval(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	own := 45

	_, end, ok := (&Appointment{ScheduledAt: &start}).Interval(30)
	assert.True(t, ok)
	assert.Equal(t, start.Add(30*time.Minute), end)

	_, end, ok = (&Appointment{ScheduledAt: &start, DurationMinutes: &own}).Interval(30)
	assert.True(t, ok)
	assert.Equal(t, start.Add(45*time.Minute), end)

	_, _, ok = (&Appointment{}).Interval(30)
	assert.False(t, ok)
}

func TestWorkingHoursConfig_Validate(t *testing.T) {
	valid := DefaultWorkingHours("doc-1")
	assert.NoError(t, valid.Validate())

	noLunch := valid
	noLunch.LunchStart, noLunch.LunchEnd = "", ""
	assert.NoError(t, noLunch.Validate())

	short := valid
	short.AppointmentDurationMinutes = 4
	assert.ErrorIs(t, short.Validate(), ErrInvalidDuration)

	reversed := valid
	reversed.WorkStart, reversed.WorkEnd = "18:00", "08:00"
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidWorkHours)

	halfLunch := valid
	halfLunch.LunchEnd = ""
	assert.ErrorIs(t, halfLunch.Validate(), ErrInvalidLunchHours)

	badLunch := valid
	badLunch.LunchStart = "noon"
	assert.ErrorIs(t, badLunch.Validate(), ErrInvalidLunchHours)
}

func TestInsuranceDays(t *testing.T) {
	plan := "unimed"
	other := "amil"
	days := []InsuranceDay{
		{Weekday: time.Tuesday, InsurancePlanID: &plan},
		{Weekday: time.Friday},
	}
	tuesday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	wednesday := tuesday.AddDate(0, 0, 1)

	exclusive := InsurancePlanFor(days, tuesday)
	assert.Equal(t, &plan, exclusive)
	assert.Nil(t, InsurancePlanFor(days, wednesday))

	assert.True(t, AllowsPlan(exclusive, &plan))
	assert.False(t, AllowsPlan(exclusive, &other))
	assert.False(t, AllowsPlan(exclusive, nil))
	assert.True(t, AllowsPlan(nil, nil))
}

func TestFullWeek(t *testing.T) {
	unimed, amil := "unimed", "amil"
	week := FullWeek([]InsuranceDay{
		{Weekday: time.Wednesday, InsurancePlanID: &unimed},
		{Weekday: time.Wednesday, InsurancePlanID: &amil},
		{Weekday: 9, InsurancePlanID: &unimed},
	})

	assert.Len(t, week, 7)
	for i, d := range week {
		assert.Equal(t, time.Weekday(i), d.Weekday)
		if d.Weekday == time.Wednesday {
			assert.Equal(t, &amil, d.InsurancePlanID)
			continue
		}
		assert.Nil(t, d.InsurancePlanID)
	}
}
