package create_insurance_plan

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// CreatePlanRequest HTTP request model
type CreatePlanRequest struct {
	Name string `json:"name" validate:"required"`
}

// PlanResponse HTTP response model
type PlanResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// FromDomain конвертирует план в HTTP response
func FromDomain(p *domain.InsurancePlan) *PlanResponse {
	return &PlanResponse{ID: p.ID, Name: p.Name, Active: p.Active}
}
