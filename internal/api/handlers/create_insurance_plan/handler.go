package create_insurance_plan

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/insurance"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/insurance-plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /insurance-plans - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	plan, err := h.service.CreatePlan(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, insurance.ErrInvalidInput):
			h.logger.Warn("POST /insurance-plans - Invalid plan: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, insurance.ErrUnauthorized):
			h.logger.Warn("POST /insurance-plans - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, insurance.ErrBackendUnavailable):
			h.logger.Error("POST /insurance-plans - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /insurance-plans - Failed to create plan: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /insurance-plans - Plan created successfully: plan_id=%s", plan.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(plan))
}
