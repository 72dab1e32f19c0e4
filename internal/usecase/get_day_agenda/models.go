package get_day_agenda

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модель запроса агенды на день
type Request struct {
	DoctorID string    // ID врача
	Date     time.Time // День (время игнорируется)
}

// Response модель агенды на день
type Response struct {
	DoctorID        string
	Date            time.Time
	Config          domain.WorkingHoursConfig // Настройки, по которым построены слоты
	SettingsSource  domain.SettingsSource     // Откуда взяты настройки
	InsurancePlanID *string                   // План, за которым закреплён день недели
	Slots           []domain.Slot
	Rows            []domain.SlotRow // Слоты, сгруппированные по периодам дня
	Counts          map[domain.SlotStatus]int
}
