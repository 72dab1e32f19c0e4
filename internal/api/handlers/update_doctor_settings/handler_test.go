package update_doctor_settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct {
	got *models.UpdateSettingsRequest
	err error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	cfg := domain.DefaultWorkingHours(req.DoctorID)
	req.ApplyToConfig(&cfg)
	return &models.SettingsResponse{Config: cfg, Source: domain.SettingsSourceBackend}, nil
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/doctors/{doctorId}/settings", h.Handle).Methods(http.MethodPut)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/doctors/doc-1/settings", strings.NewReader(body)))
	return rec
}

func TestHandle_PartialUpdate(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, logger.Nop()), `{"appointmentDurationMinutes":45,"lunchStart":"","lunchEnd":""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.got)
	assert.Equal(t, "doc-1", svc.got.DoctorID)
	require.NotNil(t, svc.got.AppointmentDurationMinutes)
	assert.Equal(t, 45, *svc.got.AppointmentDurationMinutes)
	assert.Nil(t, svc.got.WorkStart)

	var body SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 45, body.AppointmentDurationMinutes)
	assert.Equal(t, "08:00:00", body.WorkStart)
	assert.Equal(t, domain.DefaultLunchStart, body.LunchStart)
	assert.Equal(t, domain.DefaultLunchEnd, body.LunchEnd)
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, http.StatusBadRequest, serve(h, `{"appointmentDurationMinutes":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"appointmentDurationMinutes":1}`).Code)
	assert.Nil(t, svc.got)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{settings.ErrInvalidInput, http.StatusBadRequest},
		{settings.ErrUnauthorized, http.StatusUnauthorized},
		{settings.ErrDoctorNotFound, http.StatusNotFound},
		{settings.ErrBackendUnavailable, http.StatusBadGateway},
		{settings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := serve(NewHandler(&fakeService{err: tt.err}, logger.Nop()), `{"workStart":"09:00"}`)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
