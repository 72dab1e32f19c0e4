package create_schedule_block

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	createScheduleBlock "github.com/m04kA/SMC-AgendaService/internal/usecase/create_schedule_block"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	msgMissingDoctorID    = "ID врача обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgDoctorNotFound     = "врач не найден"
	msgBackendUnavailable = "бэкенд клиники недоступен"
)

type Handler struct {
	useCase CreateScheduleBlockUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase CreateScheduleBlockUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/doctors/{doctorId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	if doctorID == "" {
		h.logger.Warn("POST /doctors/{id}/blocks - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	var req CreateScheduleBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(doctorID, h.loc)
	if err != nil {
		h.logger.Warn("POST /doctors/{id}/blocks - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createScheduleBlock.ErrInvalidTimeRange):
			h.logger.Warn("POST /doctors/{id}/blocks - Invalid time range: doctor_id=%s, %s-%s", doctorID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createScheduleBlock.ErrInvalidInput):
			h.logger.Warn("POST /doctors/{id}/blocks - Invalid input: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createScheduleBlock.ErrUnauthorized):
			h.logger.Warn("POST /doctors/{id}/blocks - Unauthorized: doctor_id=%s", doctorID)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, createScheduleBlock.ErrDoctorNotFound):
			h.logger.Warn("POST /doctors/{id}/blocks - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createScheduleBlock.ErrBackendUnavailable):
			h.logger.Error("POST /doctors/{id}/blocks - Backend unavailable: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /doctors/{id}/blocks - Failed to create block: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors/{id}/blocks - Block created successfully: block_id=%s, doctor_id=%s",
		result.Block.ID, doctorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
