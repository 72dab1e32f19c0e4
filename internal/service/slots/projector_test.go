package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, saoPaulo)
}

func at(hour, minute int) *time.Time {
	t := time.Date(2026, 3, 10, hour, minute, 0, 0, saoPaulo)
	return &t
}

func config(duration int, workStart, workEnd string) domain.WorkingHoursConfig {
	return domain.WorkingHoursConfig{
		DoctorID:                   "doc-1",
		AppointmentDurationMinutes: duration,
		WorkStart:                  workStart,
		WorkEnd:                    workEnd,
	}
}

func labels(slots []domain.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.TimeLabel.String())
	}
	return out
}

func TestProject_TilesWorkWindowAndDropsRemainder(t *testing.T) {
	p := NewProjector(saoPaulo)

	slots := p.Project(testDate(), config(40, "08:00:00", "18:00:00"), nil, nil)

	require.Len(t, slots, 15)
	assert.Equal(t, "08:00", slots[0].TimeLabel.String())
	assert.Equal(t, "17:20", slots[14].TimeLabel.String())
	for i, s := range slots {
		assert.Equal(t, 40, s.DurationMinutes)
		assert.Equal(t, domain.SlotStatusAvailable, s.Status)
		if i > 0 {
			assert.Equal(t, 40*time.Minute, s.Start.Sub(slots[i-1].Start))
		}
	}
}

func TestProject_EachSlotHasOneStatus(t *testing.T) {
	p := NewProjector(saoPaulo)
	cfg := config(30, "08:00:00", "18:00:00")
	cfg.LunchStart, cfg.LunchEnd = "12:00:00", "13:00:00"

	appts := []domain.Appointment{{ID: "a1", ScheduledAt: at(9, 0)}}
	blocks := []domain.ScheduleBlock{{ID: "b1", StartAt: at(15, 0), EndAt: at(16, 0), Reason: "Meeting"}}

	for _, s := range p.Project(testDate(), cfg, appts, blocks) {
		switch s.Status {
		case domain.SlotStatusAvailable:
			assert.Nil(t, s.Appointment)
			assert.Nil(t, s.Block)
		case domain.SlotStatusAppointment:
			assert.NotNil(t, s.Appointment)
			assert.Nil(t, s.Block)
		case domain.SlotStatusBlocked:
			assert.Nil(t, s.Appointment)
			assert.NotNil(t, s.Block)
		default:
			t.Fatalf("unexpected status %q", s.Status)
		}
	}
}

func TestProject_AppointmentMarksOnlyOverlappingSlot(t *testing.T) {
	p := NewProjector(saoPaulo)
	appts := []domain.Appointment{{ID: "42", ScheduledAt: at(9, 0), DurationMinutes: ptr.Ptr(30)}}

	slots := p.Project(testDate(), config(30, "08:00:00", "18:00:00"), appts, nil)

	require.Len(t, slots, 20)
	for _, s := range slots {
		if s.TimeLabel == "09:00" {
			assert.Equal(t, domain.SlotStatusAppointment, s.Status)
			assert.Equal(t, "appt-42", s.ID)
			require.NotNil(t, s.Appointment)
			assert.Equal(t, "42", s.Appointment.ID)
			continue
		}
		assert.Equal(t, domain.SlotStatusAvailable, s.Status, "slot %s", s.TimeLabel)
	}
}

func TestProject_AppointmentDurationDefaultsToConfigured(t *testing.T) {
	p := NewProjector(saoPaulo)
	// Без собственной длительности приём занимает 60 минут конфигурации
	appts := []domain.Appointment{{ID: "1", ScheduledAt: at(8, 30)}}

	slots := p.Project(testDate(), config(60, "08:00:00", "11:00:00"), appts, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, domain.SlotStatusAppointment, slots[0].Status)
	assert.Equal(t, domain.SlotStatusAppointment, slots[1].Status)
	assert.Equal(t, domain.SlotStatusAvailable, slots[2].Status)
	// Длительность слота всегда из конфигурации
	assert.Equal(t, 60, slots[1].DurationMinutes)
}

func TestProject_LunchIsSynthesized(t *testing.T) {
	p := NewProjector(saoPaulo)
	cfg := config(30, "08:00:00", "18:00:00")
	cfg.LunchStart, cfg.LunchEnd = "12:00:00", "13:00:00"

	slots := p.Project(testDate(), cfg, nil, nil)

	blocked := make([]string, 0)
	for _, s := range slots {
		if s.Status != domain.SlotStatusBlocked {
			continue
		}
		blocked = append(blocked, s.TimeLabel.String())
		require.NotNil(t, s.Block)
		assert.Equal(t, domain.LunchBlockReason, s.Block.Reason)
		assert.Equal(t, "lunch-2026-03-10", s.Block.ID)
		assert.True(t, s.Block.IsLunch())
	}
	assert.Equal(t, []string{"12:00", "12:30"}, blocked)
	assert.Equal(t, "block-lunch-2026-03-10-12:00", slots[8].ID)
}

func TestProject_NoLunchWhenOneBoundMissing(t *testing.T) {
	p := NewProjector(saoPaulo)
	cfg := config(30, "08:00:00", "18:00:00")
	cfg.LunchStart = "12:00:00"

	for _, s := range p.Project(testDate(), cfg, nil, nil) {
		assert.Equal(t, domain.SlotStatusAvailable, s.Status)
	}
}

func TestProject_InvalidWorkHoursYieldEmpty(t *testing.T) {
	p := NewProjector(saoPaulo)

	assert.Empty(t, p.Project(testDate(), config(30, "8h", "18:00:00"), nil, nil))
	assert.Empty(t, p.Project(testDate(), config(30, "08:00:00", ""), nil, nil))
	assert.Empty(t, p.Project(testDate(), config(0, "08:00:00", "18:00:00"), nil, nil))
	assert.NotNil(t, p.Project(testDate(), config(30, "bad", "18:00:00"), nil, nil))
}

func TestProject_FirstMatchWins(t *testing.T) {
	p := NewProjector(saoPaulo)
	appts := []domain.Appointment{
		{ID: "late", ScheduledAt: at(9, 15)},
		{ID: "early", ScheduledAt: at(9, 0)},
	}
	blocks := []domain.ScheduleBlock{
		{ID: "second", StartAt: at(10, 0), EndAt: at(11, 0)},
		{ID: "first", StartAt: at(10, 0), EndAt: at(10, 30)},
	}

	slots := p.Project(testDate(), config(30, "09:00:00", "11:00:00"), appts, blocks)

	require.Len(t, slots, 4)
	// Порядок входа решает, сортировки по времени нет
	assert.Equal(t, "appt-late", slots[0].ID)
	assert.Equal(t, "appt-late", slots[1].ID)
	assert.Equal(t, "block-second-10:00", slots[2].ID)
	assert.Equal(t, "block-second-10:30", slots[3].ID)
}

func TestProject_AppointmentBeatsBlock(t *testing.T) {
	p := NewProjector(saoPaulo)
	appts := []domain.Appointment{{ID: "1", ScheduledAt: at(12, 0)}}
	cfg := config(30, "11:00:00", "13:00:00")
	cfg.LunchStart, cfg.LunchEnd = "12:00:00", "13:00:00"

	slots := p.Project(testDate(), cfg, appts, nil)

	require.Len(t, slots, 4)
	assert.Equal(t, domain.SlotStatusAppointment, slots[2].Status)
	assert.Equal(t, domain.SlotStatusBlocked, slots[3].Status)
}

func TestProject_TouchingIntervalsDoNotOverlap(t *testing.T) {
	p := NewProjector(saoPaulo)
	appts := []domain.Appointment{{ID: "1", ScheduledAt: at(8, 30), DurationMinutes: ptr.Ptr(30)}}
	blocks := []domain.ScheduleBlock{{ID: "b", StartAt: at(7, 0), EndAt: at(8, 0)}}

	slots := p.Project(testDate(), config(30, "08:00:00", "09:30:00"), appts, blocks)

	assert.Equal(t, []domain.SlotStatus{
		domain.SlotStatusAvailable,
		domain.SlotStatusAppointment,
		domain.SlotStatusAvailable,
	}, []domain.SlotStatus{slots[0].Status, slots[1].Status, slots[2].Status})
}

func TestProject_IgnoresUnparsedAndOutsideEntries(t *testing.T) {
	p := NewProjector(saoPaulo)
	appts := []domain.Appointment{
		{ID: "no-time"},
		{ID: "evening", ScheduledAt: at(20, 0)},
	}
	blocks := []domain.ScheduleBlock{{ID: "open-ended", StartAt: at(8, 0)}}

	for _, s := range p.Project(testDate(), config(30, "08:00:00", "10:00:00"), appts, blocks) {
		assert.Equal(t, domain.SlotStatusAvailable, s.Status)
	}
}

func TestProject_LabelsUseProjectorLocation(t *testing.T) {
	p := NewProjector(saoPaulo)
	// 12:00 UTC = 09:00 BRT
	utcNoon := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	appts := []domain.Appointment{{ID: "utc", ScheduledAt: &utcNoon}}

	slots := p.Project(testDate(), config(60, "08:00", "10:00"), appts, nil)

	assert.Equal(t, []string{"08:00", "09:00"}, labels(slots))
	assert.Equal(t, domain.SlotStatusAppointment, slots[1].Status)
}

func TestProject_DayIsTakenInProjectorLocation(t *testing.T) {
	p := NewProjector(saoPaulo)
	cfg := config(60, "08:00", "10:00")
	cfg.LunchStart, cfg.LunchEnd = "09:00", "10:00"
	// 01:00 UTC 11.03 = 22:00 BRT 10.03
	lateUTC := time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)

	slots := p.Project(lateUTC, cfg, nil, nil)

	require.Len(t, slots, 2)
	assert.True(t, at(8, 0).Equal(slots[0].Start))
	require.NotNil(t, slots[1].Block)
	assert.Equal(t, "lunch-2026-03-10", slots[1].Block.ID)

	effective := p.EffectiveBlocks(lateUTC, cfg, nil)
	require.Len(t, effective, 1)
	assert.Equal(t, "lunch-2026-03-10", effective[0].ID)
}

func TestProject_MorningScenario(t *testing.T) {
	p := NewProjector(saoPaulo)
	appts := []domain.Appointment{{ID: "7", ScheduledAt: at(9, 0), DurationMinutes: ptr.Ptr(30)}}

	slots := p.Project(testDate(), config(60, "08:00:00", "10:00:00"), appts, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, "slot-08:00", slots[0].ID)
	assert.Equal(t, domain.SlotStatusAvailable, slots[0].Status)
	assert.Equal(t, "appt-7", slots[1].ID)

	rows := GroupByPeriod(slots)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.SlotRowHeader, rows[0].Kind)
	assert.Equal(t, domain.PeriodMorning, rows[0].Title)
	assert.Equal(t, "header-Morning", rows[0].ID)
	assert.Equal(t, domain.SlotRowItem, rows[1].Kind)
	assert.Equal(t, "08:00", rows[1].Slot.TimeLabel.String())
	assert.Equal(t, domain.SlotRowItem, rows[2].Kind)
	assert.Equal(t, "09:00", rows[2].Slot.TimeLabel.String())
}

func TestCountByStatus(t *testing.T) {
	p := NewProjector(saoPaulo)
	cfg := config(30, "08:00:00", "18:00:00")
	cfg.LunchStart, cfg.LunchEnd = "12:00:00", "13:00:00"
	appts := []domain.Appointment{{ID: "1", ScheduledAt: at(9, 0)}}

	counts := CountByStatus(p.Project(testDate(), cfg, appts, nil))

	assert.Equal(t, 17, counts[domain.SlotStatusAvailable])
	assert.Equal(t, 1, counts[domain.SlotStatusAppointment])
	assert.Equal(t, 2, counts[domain.SlotStatusBlocked])
}
