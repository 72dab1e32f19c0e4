package update_insurance_days

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/insurance"
)

const (
	msgMissingDoctorID    = "ID врача обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownPlan        = "страховой план не найден"
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

// Handle PUT /api/v1/doctors/{doctorId}/insurance-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	if doctorID == "" {
		h.logger.Warn("PUT /doctors/{id}/insurance-days - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	var req UpdateInsuranceDaysRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /doctors/{id}/insurance-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	week, err := h.service.UpdateDays(r.Context(), doctorID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, insurance.ErrInvalidInput):
			h.logger.Warn("PUT /doctors/{id}/insurance-days - Invalid days: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, insurance.ErrUnknownPlan):
			h.logger.Warn("PUT /doctors/{id}/insurance-days - Unknown plan: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgUnknownPlan)

		case errors.Is(err, insurance.ErrUnauthorized):
			h.logger.Warn("PUT /doctors/{id}/insurance-days - Unauthorized: doctor_id=%s", doctorID)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, insurance.ErrDoctorNotFound):
			h.logger.Warn("PUT /doctors/{id}/insurance-days - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, insurance.ErrBackendUnavailable):
			h.logger.Error("PUT /doctors/{id}/insurance-days - Backend unavailable: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /doctors/{id}/insurance-days - Failed to update insurance days: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /doctors/{id}/insurance-days - Insurance days updated successfully: doctor_id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(doctorID, week))
}
