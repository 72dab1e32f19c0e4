package create_schedule_block

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createScheduleBlock "github.com/m04kA/SMC-AgendaService/internal/usecase/create_schedule_block"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// CreateScheduleBlockRequest HTTP request model
type CreateScheduleBlockRequest struct {
	Date      string `json:"date" validate:"required"`      // "2026-03-10"
	StartTime string `json:"startTime" validate:"required"` // "15:00"
	EndTime   string `json:"endTime" validate:"required"`   // "16:00"
	Reason    string `json:"reason,omitempty" validate:"max=200"`
}

// ScheduleBlockResponse HTTP response model
type ScheduleBlockResponse struct {
	ID       string `json:"id"`
	DoctorID string `json:"doctorId"`
	StartAt  string `json:"startAt,omitempty"`
	EndAt    string `json:"endAt,omitempty"`
	Reason   string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateScheduleBlockRequest) ToUseCaseRequest(doctorID string, loc *time.Location) (*createScheduleBlock.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createScheduleBlock.Request{
		DoctorID:  doctorID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createScheduleBlock.Response) *ScheduleBlockResponse {
	b := resp.Block
	out := &ScheduleBlockResponse{
		ID:       b.ID,
		DoctorID: b.DoctorID,
		Reason:   b.Reason,
	}
	if b.StartAt != nil {
		out.StartAt = types.FormatWireDateTime(*b.StartAt)
	}
	if b.EndAt != nil {
		out.EndAt = types.FormatWireDateTime(*b.EndAt)
	}
	return out
}
