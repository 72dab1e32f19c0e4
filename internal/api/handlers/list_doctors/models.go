package list_doctors

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// DoctorResponse HTTP response model
type DoctorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// FromDomain конвертирует список врачей в HTTP response
func FromDomain(doctors []domain.Doctor) []DoctorResponse {
	resp := make([]DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		resp = append(resp, DoctorResponse{
			ID:        d.ID,
			Name:      d.Name,
			Email:     d.Email,
			Specialty: d.Specialty,
		})
	}
	return resp
}
