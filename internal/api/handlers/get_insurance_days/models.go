package get_insurance_days

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// InsuranceDayResponse HTTP response model
// insurancePlanId null - день открыт для всех планов
type InsuranceDayResponse struct {
	Weekday         int     `json:"weekday"`
	InsurancePlanID *string `json:"insurancePlanId"`
}

// InsuranceWeekResponse HTTP response model
type InsuranceWeekResponse struct {
	DoctorID string                 `json:"doctorId"`
	Days     []InsuranceDayResponse `json:"days"`
}

// FromDomain конвертирует неделю в HTTP response
func FromDomain(doctorID string, days []domain.InsuranceDay) *InsuranceWeekResponse {
	resp := &InsuranceWeekResponse{
		DoctorID: doctorID,
		Days:     make([]InsuranceDayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, InsuranceDayResponse{
			Weekday:         int(d.Weekday),
			InsurancePlanID: d.InsurancePlanID,
		})
	}
	return resp
}
