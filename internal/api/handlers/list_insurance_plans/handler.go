package list_insurance_plans

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/insurance"
)

const (
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

// Handle GET /api/v1/insurance-plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, insurance.ErrUnauthorized):
			h.logger.Warn("GET /insurance-plans - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, insurance.ErrBackendUnavailable):
			h.logger.Error("GET /insurance-plans - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /insurance-plans - Failed to list plans: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /insurance-plans - Plans retrieved successfully: count=%d", len(plans))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(plans))
}
