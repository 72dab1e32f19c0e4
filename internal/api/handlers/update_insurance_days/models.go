package update_insurance_days

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// InsuranceDayRequest HTTP request model
type InsuranceDayRequest struct {
	Weekday         *int    `json:"weekday" validate:"required,min=0,max=6"`
	InsurancePlanID *string `json:"insurancePlanId"`
}

// UpdateInsuranceDaysRequest HTTP request model
// Неделя заменяется целиком, не переданные дни открыты для всех планов
type UpdateInsuranceDaysRequest struct {
	Days []InsuranceDayRequest `json:"days" validate:"max=7,dive"`
}

// InsuranceDayResponse HTTP response model
type InsuranceDayResponse struct {
	Weekday         int     `json:"weekday"`
	InsurancePlanID *string `json:"insurancePlanId"`
}

// InsuranceWeekResponse HTTP response model
type InsuranceWeekResponse struct {
	DoctorID string                 `json:"doctorId"`
	Days     []InsuranceDayResponse `json:"days"`
}

// ToDomain конвертирует HTTP запрос в доменные дни
func (r *UpdateInsuranceDaysRequest) ToDomain() []domain.InsuranceDay {
	days := make([]domain.InsuranceDay, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, domain.InsuranceDay{
			Weekday:         time.Weekday(*d.Weekday),
			InsurancePlanID: d.InsurancePlanID,
		})
	}
	return days
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
