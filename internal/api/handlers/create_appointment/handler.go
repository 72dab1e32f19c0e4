package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	msgMissingDoctorID        = "ID врача обязателен"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDate            = "некорректный формат даты приёма, ожидается YYYY-MM-DD"
	msgInvalidTime            = "некорректный формат времени начала, ожидается HH:MM"
	msgPastDate               = "время приёма уже прошло"
	msgSlotNotAvailable       = "выбранное время занято"
	msgInsuranceDayRestricted = "день закреплён за другим планом страховки"
	msgLocked                 = "агенда врача изменяется другим запросом, повторите позже"
	msgDoctorNotFound         = "врач не найден"
	msgBackendUnavailable     = "бэкенд клиники недоступен"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/doctors/{doctorId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	if doctorID == "" {
		h.logger.Warn("POST /doctors/{id}/appointments - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(doctorID, h.loc)
	if err != nil {
		h.logger.Warn("POST /doctors/{id}/appointments - Failed to parse request: %v", err)
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
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /doctors/{id}/appointments - Slot not available: doctor_id=%s, date=%s, time=%s",
				doctorID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInsuranceDayRestricted):
			h.logger.Warn("POST /doctors/{id}/appointments - Insurance restriction: doctor_id=%s, date=%s", doctorID, req.Date)
			handlers.RespondConflict(w, msgInsuranceDayRestricted)

		case errors.Is(err, createAppointment.ErrLocked):
			h.logger.Warn("POST /doctors/{id}/appointments - Agenda locked: doctor_id=%s, date=%s", doctorID, req.Date)
			handlers.RespondConflict(w, msgLocked)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /doctors/{id}/appointments - Past date: doctor_id=%s, date=%s", doctorID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /doctors/{id}/appointments - Invalid input: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrUnauthorized):
			h.logger.Warn("POST /doctors/{id}/appointments - Unauthorized: doctor_id=%s", doctorID)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, createAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /doctors/{id}/appointments - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createAppointment.ErrBackendUnavailable):
			h.logger.Error("POST /doctors/{id}/appointments - Backend unavailable: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /doctors/{id}/appointments - Failed to create appointment: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors/{id}/appointments - Appointment created successfully: appointment_id=%s, doctor_id=%s",
		result.Appointment.ID, doctorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
