package create_schedule_block

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса блокировки интервала агенды
type Request struct {
	DoctorID  string
	Date      time.Time
	StartTime types.TimeString // HH:MM
	EndTime   types.TimeString // HH:MM
	Reason    string           // Пустая причина заменяется на "Blocked"
}

// Response модель созданной блокировки
type Response struct {
	Block domain.ScheduleBlock
}
