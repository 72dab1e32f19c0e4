package list_doctors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeLister struct {
	doctors []domain.Doctor
	err     error
}

func (f *fakeLister) ListDoctors(_ context.Context) ([]domain.Doctor, error) {
	return f.doctors, f.err
}

func TestHandle(t *testing.T) {
	h := NewHandler(&fakeLister{doctors: []domain.Doctor{{ID: "1", Name: "Dr. Silva", Specialty: "Cardiology"}}}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []DoctorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Dr. Silva", body[0].Name)
	assert.Equal(t, "Cardiology", body[0].Specialty)
}

func TestHandle_Empty(t *testing.T) {
	h := NewHandler(&fakeLister{}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{clinicapi.ErrUnauthorized, http.StatusUnauthorized},
		{clinicapi.ErrUnavailable, http.StatusBadGateway},
		{clinicapi.ErrInvalidResponse, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := NewHandler(&fakeLister{err: tt.err}, logger.Nop())
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))
		assert.Equal(t, tt.want, rec.Code)
	}
}
