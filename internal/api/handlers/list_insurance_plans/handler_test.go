package list_insurance_plans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/insurance"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct {
	plans []domain.InsurancePlan
	err   error
}

func (f *fakeService) ListPlans(_ context.Context) ([]domain.InsurancePlan, error) {
	return f.plans, f.err
}

func TestHandle(t *testing.T) {
	h := NewHandler(&fakeService{plans: []domain.InsurancePlan{{ID: "3", Name: "Unimed", Active: true}}}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/insurance-plans", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []PlanResponse{{ID: "3", Name: "Unimed", Active: true}}, body)
}

func TestHandle_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/insurance-plans", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{insurance.ErrUnauthorized, http.StatusUnauthorized},
		{insurance.ErrBackendUnavailable, http.StatusBadGateway},
		{insurance.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		NewHandler(&fakeService{err: tt.err}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/insurance-plans", nil))
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
