package get_day_agenda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getDayAgenda "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_agenda"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

var zone = time.FixedZone("BRT", -3*3600)

type fakeUseCase struct {
	got  *getDayAgenda.Request
	resp *getDayAgenda.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getDayAgenda.Request) (*getDayAgenda.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/doctors/{doctorId}/agenda", h.Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, zone)
	scheduled := time.Date(2026, 3, 10, 8, 0, 0, 0, zone)
	appt := &domain.Appointment{ID: "42", PatientName: "Ana", ScheduledAt: &scheduled, Status: domain.AppointmentStatusConfirmed}
	slots := []domain.Slot{
		{ID: "appt-42", TimeLabel: types.TimeString("08:00"), Start: scheduled, DurationMinutes: 30, Status: domain.SlotStatusAppointment, Appointment: appt},
		{ID: "slot-08:30", TimeLabel: types.TimeString("08:30"), Start: scheduled.Add(30 * time.Minute), DurationMinutes: 30, Status: domain.SlotStatusAvailable},
	}
	uc := &fakeUseCase{resp: &getDayAgenda.Response{
		DoctorID:       "doc-1",
		Date:           date,
		Config:         domain.DefaultWorkingHours("doc-1"),
		SettingsSource: domain.SettingsSourceSnapshot,
		Slots:          slots,
		Rows: []domain.SlotRow{
			{Kind: domain.SlotRowHeader, ID: "header-Morning", Title: domain.PeriodMorning},
			{Kind: domain.SlotRowItem, ID: "appt-42", Slot: &slots[0]},
			{Kind: domain.SlotRowItem, ID: "slot-08:30", Slot: &slots[1]},
		},
		Counts: map[domain.SlotStatus]int{domain.SlotStatusAvailable: 1, domain.SlotStatusAppointment: 1},
	}}

	rec := serve(NewHandler(uc, zone, logger.Nop()), "/api/v1/doctors/doc-1/agenda?date=2026-03-10")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, "doc-1", uc.got.DoctorID)
	assert.True(t, uc.got.Date.Equal(date))

	var body AgendaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-03-10", body.Date)
	assert.Equal(t, "snapshot", body.SettingsSource)
	assert.Equal(t, CountsResponse{Available: 1, Appointment: 1}, body.Counts)
	require.Len(t, body.Slots, 2)
	require.NotNil(t, body.Slots[0].Appointment)
	assert.Equal(t, "Ana", body.Slots[0].Appointment.PatientName)
	assert.Equal(t, "2026-03-10 08:00:00", body.Slots[0].Start)
	assert.Nil(t, body.Slots[1].Appointment)
	require.Len(t, body.Rows, 3)
	assert.Equal(t, "Morning", body.Rows[0].Title)
	assert.Equal(t, "appt-42", body.Rows[1].SlotID)
}

func TestHandle_BadDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, zone, logger.Nop())

	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/doctors/doc-1/agenda").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/doctors/doc-1/agenda?date=10/03/2026").Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{getDayAgenda.ErrInvalidInput, http.StatusBadRequest},
		{getDayAgenda.ErrUnauthorized, http.StatusUnauthorized},
		{getDayAgenda.ErrDoctorNotFound, http.StatusNotFound},
		{getDayAgenda.ErrBackendUnavailable, http.StatusBadGateway},
		{getDayAgenda.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: fmt.Errorf("%w: boom", tt.err)}, zone, logger.Nop())
			assert.Equal(t, tt.want, serve(h, "/api/v1/doctors/doc-1/agenda?date=2026-03-10").Code)
		})
	}
}
