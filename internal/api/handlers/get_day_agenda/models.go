package get_day_agenda

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getDayAgenda "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_agenda"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// AgendaResponse HTTP response model
type AgendaResponse struct {
	DoctorID        string           `json:"doctorId"`
	Date            string           `json:"date"`
	Settings        SettingsResponse `json:"settings"`
	SettingsSource  string           `json:"settingsSource"`
	InsurancePlanID *string          `json:"insurancePlanId,omitempty"`
	Counts          CountsResponse   `json:"counts"`
	Slots           []SlotResponse   `json:"slots"`
	Rows            []RowResponse    `json:"rows"`
}

type SettingsResponse struct {
	AppointmentDurationMinutes int    `json:"appointmentDurationMinutes"`
	WorkStart                  string `json:"workStart"`
	WorkEnd                    string `json:"workEnd"`
	LunchStart                 string `json:"lunchStart,omitempty"`
	LunchEnd                   string `json:"lunchEnd,omitempty"`
}

type CountsResponse struct {
	Available   int `json:"available"`
	Appointment int `json:"appointment"`
	Blocked     int `json:"blocked"`
}

type SlotResponse struct {
	ID              string               `json:"id"`
	Time            string               `json:"time"`
	Start           string               `json:"start"`
	DurationMinutes int                  `json:"durationMinutes"`
	Status          string               `json:"status"`
	Appointment     *AppointmentResponse `json:"appointment,omitempty"`
	Block           *BlockResponse       `json:"block,omitempty"`
}

type AppointmentResponse struct {
	ID              string  `json:"id"`
	PatientID       string  `json:"patientId,omitempty"`
	PatientName     string  `json:"patientName,omitempty"`
	Status          string  `json:"status"`
	ScheduledAt     string  `json:"scheduledAt,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	InsurancePlanID *string `json:"insurancePlanId,omitempty"`
}

type BlockResponse struct {
	ID      string `json:"id"`
	Reason  string `json:"reason"`
	StartAt string `json:"startAt,omitempty"`
	EndAt   string `json:"endAt,omitempty"`
	Lunch   bool   `json:"lunch"`
}

// RowResponse строка отображения: заголовок периода или ссылка на слот
type RowResponse struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	SlotID string `json:"slotId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAgenda.Response) *AgendaResponse {
	out := &AgendaResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date.Format(domain.DateFormat),
		Settings: SettingsResponse{
			AppointmentDurationMinutes: resp.Config.AppointmentDurationMinutes,
			WorkStart:                  resp.Config.WorkStart,
			WorkEnd:                    resp.Config.WorkEnd,
			LunchStart:                 resp.Config.LunchStart,
			LunchEnd:                   resp.Config.LunchEnd,
		},
		SettingsSource:  string(resp.SettingsSource),
		InsurancePlanID: resp.InsurancePlanID,
		Counts: CountsResponse{
			Available:   resp.Counts[domain.SlotStatusAvailable],
			Appointment: resp.Counts[domain.SlotStatusAppointment],
			Blocked:     resp.Counts[domain.SlotStatusBlocked],
		},
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
		Rows:  make([]RowResponse, 0, len(resp.Rows)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, fromSlot(s))
	}

	for _, row := range resp.Rows {
		r := RowResponse{Kind: string(row.Kind), ID: row.ID, Title: string(row.Title)}
		if row.Slot != nil {
			r.SlotID = row.Slot.ID
		}
		out.Rows = append(out.Rows, r)
	}

	return out
}

func fromSlot(s domain.Slot) SlotResponse {
	slot := SlotResponse{
		ID:              s.ID,
		Time:            s.TimeLabel.String(),
		Start:           types.FormatWireDateTime(s.Start),
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
	}

	if a := s.Appointment; a != nil {
		slot.Appointment = &AppointmentResponse{
			ID:              a.ID,
			PatientID:       a.PatientID,
			PatientName:     a.PatientName,
			Status:          string(a.Status),
			DurationMinutes: a.DurationMinutes,
			InsurancePlanID: a.InsurancePlanID,
		}
		if a.ScheduledAt != nil {
			slot.Appointment.ScheduledAt = types.FormatWireDateTime(*a.ScheduledAt)
		}
	}

	if b := s.Block; b != nil {
		slot.Block = &BlockResponse{ID: b.ID, Reason: b.Reason, Lunch: b.IsLunch()}
		if b.StartAt != nil {
			slot.Block.StartAt = types.FormatWireDateTime(*b.StartAt)
		}
		if b.EndAt != nil {
			slot.Block.EndAt = types.FormatWireDateTime(*b.EndAt)
		}
	}

	return slot
}
