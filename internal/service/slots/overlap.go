package slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// overlaps проверяет пересечение интервалов [aStart, aEnd) и [bStart, bEnd)
// Граничащие интервалы (конец одного ровно в начале другого) НЕ пересекаются
//
// Примеры:
// - Слот 09:00-09:30, приём 09:15-09:45 → ЕСТЬ пересечение
// - Слот 09:00-09:30, приём 08:30-09:00 → НЕТ пересечения (граничат)
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FirstMatchWins возвращает индекс первого элемента, для которого match вернул true, или -1
// Порядок входного списка решает, кто займёт слот; сортировки нет
func FirstMatchWins[T any](items []T, match func(item *T) bool) int {
	for i := range items {
		if match(&items[i]) {
			return i
		}
	}
	return -1
}

// FindConflict возвращает первый приём, а если его нет - первую блокировку, пересекающие окно [start, end)
// defaultDuration используется для приёмов без собственной длительности
func FindConflict(
	start, end time.Time,
	defaultDuration int,
	appointments []domain.Appointment,
	blocks []domain.ScheduleBlock,
) (*domain.Appointment, *domain.ScheduleBlock) {
	apptIdx := FirstMatchWins(appointments, func(a *domain.Appointment) bool {
		aStart, aEnd, ok := a.Interval(defaultDuration)
		return ok && overlaps(start, end, aStart, aEnd)
	})
	if apptIdx >= 0 {
		appt := appointments[apptIdx]
		return &appt, nil
	}

	blockIdx := FirstMatchWins(blocks, func(b *domain.ScheduleBlock) bool {
		bStart, bEnd, ok := b.Interval()
		return ok && overlaps(start, end, bStart, bEnd)
	})
	if blockIdx >= 0 {
		block := blocks[blockIdx]
		return nil, &block
	}

	return nil, nil
}
