package slots

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// GroupByPeriod вставляет заголовок периода перед каждым слотом, период которого
// отличается от периода предыдущего слота
func GroupByPeriod(slots []domain.Slot) []domain.SlotRow {
	rows := make([]domain.SlotRow, 0, len(slots)+4)

	var lastPeriod domain.Period
	for i := range slots {
		period := domain.PeriodForHour(slots[i].TimeLabel.Hour())
		if i == 0 || period != lastPeriod {
			rows = append(rows, domain.SlotRow{
				Kind:  domain.SlotRowHeader,
				ID:    "header-" + string(period),
				Title: period,
			})
			lastPeriod = period
		}

		slot := slots[i]
		rows = append(rows, domain.SlotRow{
			Kind: domain.SlotRowItem,
			ID:   slot.ID,
			Slot: &slot,
		})
	}

	return rows
}
