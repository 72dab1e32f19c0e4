package update_doctor_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings"
)

const (
	msgMissingDoctorID    = "ID врача обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDoctorNotFound     = "врач не найден"
	msgBackendUnavailable = "бэкенд клиники недоступен"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/doctors/{doctorId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	if doctorID == "" {
		h.logger.Warn("PUT /doctors/{id}/settings - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /doctors/{id}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(doctorID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /doctors/{id}/settings - Invalid settings: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, settings.ErrUnauthorized):
			h.logger.Warn("PUT /doctors/{id}/settings - Unauthorized: doctor_id=%s", doctorID)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, settings.ErrDoctorNotFound):
			h.logger.Warn("PUT /doctors/{id}/settings - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, settings.ErrBackendUnavailable):
			h.logger.Error("PUT /doctors/{id}/settings - Backend unavailable: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /doctors/{id}/settings - Failed to update settings: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /doctors/{id}/settings - Settings updated successfully: doctor_id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, FromConfig(result.Config))
}
