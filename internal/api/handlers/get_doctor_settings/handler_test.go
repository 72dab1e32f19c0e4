package get_doctor_settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings"
	"github.com/m04kA/SMC-AgendaService/internal/service/settings/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct {
	resp *models.SettingsResponse
	err  error
}

func (f *fakeService) GetWorkingHours(_ context.Context, _ string) (*models.SettingsResponse, error) {
	return f.resp, f.err
}

func serve(h *Handler) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/doctors/{doctorId}/settings", h.Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors/doc-1/settings", nil))
	return rec
}

func TestHandle_Snapshot(t *testing.T) {
	updatedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	h := NewHandler(&fakeService{resp: &models.SettingsResponse{
		Config:    domain.DefaultWorkingHours("doc-1"),
		Source:    domain.SettingsSourceSnapshot,
		UpdatedAt: &updatedAt,
	}}, logger.Nop())

	rec := serve(h)
	require.Equal(t, http.StatusOK, rec.Code)

	var body SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "doc-1", body.DoctorID)
	assert.Equal(t, 30, body.AppointmentDurationMinutes)
	assert.Equal(t, "12:00:00", body.LunchStart)
	assert.Equal(t, "snapshot", body.Source)
	require.NotNil(t, body.SnapshotUpdatedAt)
	assert.Equal(t, "2026-03-01T10:00:00Z", *body.SnapshotUpdatedAt)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(NewHandler(&fakeService{err: settings.ErrUnauthorized}, logger.Nop())).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(NewHandler(&fakeService{err: settings.ErrInternal}, logger.Nop())).Code)
}
