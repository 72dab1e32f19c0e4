package get_doctor_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings"
)

const (
	msgMissingDoctorID = "ID врача обязателен"
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

// Handle GET /api/v1/doctors/{doctorId}/settings
// Бэкенд недоступен - отдаём снимок или значения по умолчанию, source показывает откуда
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	if doctorID == "" {
		h.logger.Warn("GET /doctors/{id}/settings - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	result, err := h.service.GetWorkingHours(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnauthorized):
			h.logger.Warn("GET /doctors/{id}/settings - Unauthorized: doctor_id=%s", doctorID)
			handlers.RespondUnauthorized(w)

		default:
			h.logger.Error("GET /doctors/{id}/settings - Failed to get settings: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/settings - Settings retrieved successfully: doctor_id=%s, source=%s",
		doctorID, result.Source)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
