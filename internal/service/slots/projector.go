package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Projector строит слоты рабочего дня врача
// Не хранит состояния, безопасен для конкурентного использования
type Projector struct {
	loc *time.Location
}

// NewProjector создаёт проектор в заданной временной зоне
// loc определяет, как интерпретируются времена без смещения и как строятся метки HH:MM
func NewProjector(loc *time.Location) *Projector {
	if loc == nil {
		loc = time.Local
	}
	return &Projector{loc: loc}
}

// Location возвращает временную зону проектора
func (p *Projector) Location() *time.Location {
	return p.loc
}

// Project раскладывает день на слоты длительностью cfg.AppointmentDurationMinutes
// Календарный день берётся в часовом поясе проектора
// Некорректное время начала/конца работы или неположительная длительность дают пустой результат
func (p *Projector) Project(
	date time.Time,
	cfg domain.WorkingHoursConfig,
	appointments []domain.Appointment,
	blocks []domain.ScheduleBlock,
) []domain.Slot {
	duration := cfg.AppointmentDurationMinutes
	if duration <= 0 {
		return []domain.Slot{}
	}
	date = date.In(p.loc)

	// Шаг 1: Границы рабочего дня
	workStart, err := types.CombineDateAndTime(date, cfg.WorkStart, p.loc)
	if err != nil {
		return []domain.Slot{}
	}
	workEnd, err := types.CombineDateAndTime(date, cfg.WorkEnd, p.loc)
	if err != nil {
		return []domain.Slot{}
	}

	// Шаг 2: Эффективные блокировки = переданные + обед
	// Обед добавляется в конец списка и не объединяется с пересекающимися блоками
	effectiveBlocks := p.EffectiveBlocks(date, cfg, blocks)

	step := time.Duration(duration) * time.Minute
	result := make([]domain.Slot, 0)

	// Шаг 3: Идём курсором от начала до конца работы с фиксированным шагом
	for cursor := workStart; cursor.Before(workEnd); cursor = cursor.Add(step) {
		slotEnd := cursor.Add(step)
		// Хвост, не помещающийся до конца работы, отбрасывается
		if slotEnd.After(workEnd) {
			break
		}

		result = append(result, p.classify(cursor, slotEnd, duration, appointments, effectiveBlocks))
	}

	return result
}

// EffectiveBlocks возвращает блокировки дня вместе с синтетическим обедом
func (p *Projector) EffectiveBlocks(date time.Time, cfg domain.WorkingHoursConfig, blocks []domain.ScheduleBlock) []domain.ScheduleBlock {
	effective := make([]domain.ScheduleBlock, 0, len(blocks)+1)
	effective = append(effective, blocks...)

	if lunch, ok := p.lunchBlock(date.In(p.loc), cfg); ok {
		effective = append(effective, lunch)
	}

	return effective
}

func (p *Projector) lunchBlock(date time.Time, cfg domain.WorkingHoursConfig) (domain.ScheduleBlock, bool) {
	if !cfg.HasLunch() {
		return domain.ScheduleBlock{}, false
	}

	start, err := types.CombineDateAndTime(date, cfg.LunchStart, p.loc)
	if err != nil {
		return domain.ScheduleBlock{}, false
	}
	end, err := types.CombineDateAndTime(date, cfg.LunchEnd, p.loc)
	if err != nil {
		return domain.ScheduleBlock{}, false
	}

	return domain.ScheduleBlock{
		ID:       domain.LunchBlockIDPrefix + types.DateKey(date),
		DoctorID: cfg.DoctorID,
		StartAt:  &start,
		EndAt:    &end,
		Reason:   domain.LunchBlockReason,
	}, true
}

// classify определяет статус слота [start, end)
// Приёмы проверяются раньше блокировок, внутри каждого списка побеждает первый совпавший
func (p *Projector) classify(
	start, end time.Time,
	duration int,
	appointments []domain.Appointment,
	blocks []domain.ScheduleBlock,
) domain.Slot {
	label := types.NewTimeString(start.In(p.loc))
	slot := domain.Slot{
		TimeLabel:       label,
		Start:           start,
		DurationMinutes: duration,
	}

	// Длительность приёма нужна только для проверки пересечения
	appt, block := FindConflict(start, end, duration, appointments, blocks)
	switch {
	case appt != nil:
		slot.ID = fmt.Sprintf("appt-%s", appt.ID)
		slot.Status = domain.SlotStatusAppointment
		slot.Appointment = appt
	case block != nil:
		slot.ID = fmt.Sprintf("block-%s-%s", block.ID, label)
		slot.Status = domain.SlotStatusBlocked
		slot.Block = block
	default:
		slot.ID = fmt.Sprintf("slot-%s", label)
		slot.Status = domain.SlotStatusAvailable
	}
	return slot
}

// CountByStatus считает слоты по статусам
func CountByStatus(slots []domain.Slot) map[domain.SlotStatus]int {
	counts := map[domain.SlotStatus]int{
		domain.SlotStatusAvailable:   0,
		domain.SlotStatusAppointment: 0,
		domain.SlotStatusBlocked:     0,
	}
	for _, s := range slots {
		counts[s.Status]++
	}
	return counts
}
