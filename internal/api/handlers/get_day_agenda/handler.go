package get_day_agenda

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getDayAgenda "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_agenda"
)

const (
	msgMissingDoctorID    = "ID врача обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDoctorNotFound     = "врач не найден"
	msgBackendUnavailable = "бэкенд клиники недоступен"
)

type Handler struct {
	useCase GetDayAgendaUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GetDayAgendaUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/agenda
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	if doctorID == "" {
		h.logger.Warn("GET /doctors/{id}/agenda - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"), h.loc)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/agenda - Invalid date: %v", err)
		if errors.Is(err, handlers.ErrMissingParam) {
			handlers.RespondBadRequest(w, msgMissingDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayAgenda.Request{DoctorID: doctorID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDayAgenda.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/agenda - Invalid input: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getDayAgenda.ErrUnauthorized):
			h.logger.Warn("GET /doctors/{id}/agenda - Unauthorized: doctor_id=%s", doctorID)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, getDayAgenda.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/agenda - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, getDayAgenda.ErrBackendUnavailable):
			h.logger.Error("GET /doctors/{id}/agenda - Backend unavailable: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /doctors/{id}/agenda - Failed to get agenda: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/agenda - Agenda retrieved successfully: doctor_id=%s, date=%s, slots_count=%d",
		doctorID, result.Date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
