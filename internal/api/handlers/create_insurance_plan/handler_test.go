package create_insurance_plan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/insurance"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct {
	got string
	err error
}

func (f *fakeService) CreatePlan(_ context.Context, name string) (*domain.InsurancePlan, error) {
	f.got = name
	if f.err != nil {
		return nil, f.err
	}
	return &domain.InsurancePlan{ID: "12", Name: name, Active: true}, nil
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/insurance-plans", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, logger.Nop()), `{"name":"Unimed"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Unimed", svc.got)

	var body PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, PlanResponse{ID: "12", Name: "Unimed", Active: true}, body)
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, http.StatusBadRequest, serve(h, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"name":"x","extra":1}`).Code)
	assert.Empty(t, svc.got)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{insurance.ErrInvalidInput, http.StatusBadRequest},
		{insurance.ErrUnauthorized, http.StatusUnauthorized},
		{insurance.ErrBackendUnavailable, http.StatusBadGateway},
		{insurance.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := serve(NewHandler(&fakeService{err: tt.err}, logger.Nop()), `{"name":"Unimed"}`)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
