package list_insurance_plans

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// PlanResponse HTTP response model
type PlanResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// FromDomain конвертирует планы в HTTP response
func FromDomain(plans []domain.InsurancePlan) []PlanResponse {
	result := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, PlanResponse{ID: p.ID, Name: p.Name, Active: p.Active})
	}
	return result
}
