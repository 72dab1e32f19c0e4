package get_insurance_days

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/insurance"
)

const (
	msgMissingDoctorID    = "ID врача обязателен"
	msgDoctorNotFound     = "врач не найден"
	msgBackendUnavailable = "бэкенд клиники недоступен"
)

type Handler struct {
	service InsuranceService
	logger  Logger
}

func NewHandler(service InsuranceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/insurance-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	if doctorID == "" {
		h.logger.Warn("GET /doctors/{id}/insurance-days - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	days, err := h.service.GetDays(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, insurance.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingDoctorID)

		case errors.Is(err, insurance.ErrUnauthorized):
			h.logger.Warn("GET /doctors/{id}/insurance-days - Unauthorized: doctor_id=%s", doctorID)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, insurance.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/insurance-days - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, insurance.ErrBackendUnavailable):
			h.logger.Error("GET /doctors/{id}/insurance-days - Backend unavailable: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /doctors/{id}/insurance-days - Failed to get insurance days: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/insurance-days - Insurance days retrieved successfully: doctor_id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(doctorID, days))
}
