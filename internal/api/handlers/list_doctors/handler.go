package list_doctors

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
)

const (
	msgBackendUnavailable = "бэкенд клиники недоступен"
)

type Handler struct {
	doctors DoctorLister
	logger  Logger
}

func NewHandler(doctors DoctorLister, logger Logger) *Handler {
	return &Handler{
		doctors: doctors,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctors.ListDoctors(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, clinicapi.ErrUnauthorized):
			h.logger.Warn("GET /doctors - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, clinicapi.ErrUnavailable):
			h.logger.Error("GET /doctors - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /doctors - Failed to list doctors: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors - Doctors retrieved successfully: count=%d", len(doctors))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(doctors))
}
