package clinicapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func TestToWorkingHours_EmptyPayload(t *testing.T) {
	cfg := ToWorkingHours(DoctorSettingsDTO{}, "doc-1")

	assert.Equal(t, domain.DefaultWorkingHours("doc-1"), cfg)
}

func TestToWorkingHours_NonPositiveDurationFallsBack(t *testing.T) {
	cfg := ToWorkingHours(DoctorSettingsDTO{
		AppointmentDurationMinutes: types.FlexInt{Value: 0, Valid: true},
		WorkStartTime:              ptr.Ptr("  "),
	}, "doc-1")

	assert.Equal(t, domain.DefaultAppointmentDurationMinutes, cfg.AppointmentDurationMinutes)
	assert.Equal(t, domain.DefaultWorkStart, cfg.WorkStart)
}

func TestToWorkingHours_UnparseableHoursPassThrough(t *testing.T) {
	cfg := ToWorkingHours(DoctorSettingsDTO{
		WorkStartTime: ptr.Ptr("nine"),
		WorkEndTime:   ptr.Ptr("25:99"),
	}, "doc-1")

	assert.Equal(t, "nine", cfg.WorkStart)
	assert.Equal(t, "25:99", cfg.WorkEnd)
}

func TestToWorkingHours_BlankLunchTakesDefault(t *testing.T) {
	cfg := ToWorkingHours(DoctorSettingsDTO{
		LunchStartTime: ptr.Ptr(""),
		LunchEndTime:   ptr.Ptr(" "),
	}, "doc-1")

	assert.Equal(t, domain.DefaultLunchStart, cfg.LunchStart)
	assert.Equal(t, domain.DefaultLunchEnd, cfg.LunchEnd)
	assert.True(t, cfg.HasLunch())

	cfg = ToWorkingHours(DoctorSettingsDTO{
		LunchStartTime: ptr.Ptr("12:30:00"),
		LunchEndTime:   ptr.Ptr("13:15:00"),
	}, "doc-1")
	assert.Equal(t, "12:30:00", cfg.LunchStart)
	assert.Equal(t, "13:15:00", cfg.LunchEnd)
}

func TestToAppointment_UnparseableTime(t *testing.T) {
	appt := ToAppointment(AppointmentDTO{
		ID:              types.FlexString{Value: "1", Valid: true},
		ScheduledAt:     ptr.Ptr("tomorrow"),
		DurationMinutes: types.FlexInt{Value: -5, Valid: true},
		Status:          ptr.Ptr("realizada"),
	}, brt)

	assert.Nil(t, appt.ScheduledAt)
	assert.Nil(t, appt.DurationMinutes)
	assert.Equal(t, domain.AppointmentStatusDone, appt.Status)
}

func TestFromWorkingHours(t *testing.T) {
	req := FromWorkingHours(domain.WorkingHoursConfig{
		DoctorID:                   "doc-1",
		AppointmentDurationMinutes: 20,
		WorkStart:                  "09:00",
		WorkEnd:                    "17:00",
	})

	assert.Equal(t, UpdateDoctorSettingsRequest{
		AppointmentDurationMinutes: 20,
		WorkStartTime:              "09:00",
		WorkEndTime:                "17:00",
	}, req)
}
