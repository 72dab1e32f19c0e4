package insurance

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

type fakeClient struct {
	plans     []domain.InsurancePlan
	days      []domain.InsuranceDay
	err       error
	created   []string
	updated   [][]domain.InsuranceDay
	planCalls int
}

func (f *fakeClient) ListInsurancePlans(_ context.Context) ([]domain.InsurancePlan, error) {
	f.planCalls++
	return f.plans, f.err
}

func (f *fakeClient) CreateInsurancePlan(_ context.Context, name string) (*domain.InsurancePlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, name)
	return &domain.InsurancePlan{ID: "new", Name: name, Active: true}, nil
}

func (f *fakeClient) GetInsuranceDays(_ context.Context, _ string) ([]domain.InsuranceDay, error) {
	return f.days, f.err
}

func (f *fakeClient) UpdateInsuranceDays(_ context.Context, _ string, days []domain.InsuranceDay) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, days)
	return nil
}

func plans() []domain.InsurancePlan {
	return []domain.InsurancePlan{{ID: "unimed", Name: "Unimed", Active: true}, {ID: "amil", Name: "Amil"}}
}

func TestCreatePlan(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, logger.Nop())

	plan, err := svc.CreatePlan(context.Background(), "  Bradesco  ")
	require.NoError(t, err)
	assert.Equal(t, "Bradesco", plan.Name)
	assert.Equal(t, []string{"Bradesco"}, client.created)
}

func TestCreatePlan_Validation(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, logger.Nop())

	_, err := svc.CreatePlan(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreatePlan(context.Background(), strings.Repeat("é", MaxPlanNameLength+1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, client.created)
}

func TestGetDays_ReturnsFullWeek(t *testing.T) {
	client := &fakeClient{days: []domain.InsuranceDay{{Weekday: time.Tuesday, InsurancePlanID: ptr.Ptr("unimed")}}}
	svc := NewService(client, logger.Nop())

	week, err := svc.GetDays(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, time.Sunday, week[0].Weekday)
	assert.Nil(t, week[0].InsurancePlanID)
	require.NotNil(t, week[2].InsurancePlanID)
	assert.Equal(t, "unimed", *week[2].InsurancePlanID)
}

func TestUpdateDays_ReplacesWeek(t *testing.T) {
	client := &fakeClient{plans: plans()}
	svc := NewService(client, logger.Nop())

	week, err := svc.UpdateDays(context.Background(), "doc-1", []domain.InsuranceDay{
		{Weekday: time.Monday, InsurancePlanID: ptr.Ptr("amil")},
		{Weekday: time.Friday, InsurancePlanID: ptr.Ptr(" ")},
	})
	require.NoError(t, err)

	require.Len(t, client.updated, 1)
	sent := client.updated[0]
	require.Len(t, sent, 7)
	assert.Equal(t, sent, week)
	require.NotNil(t, sent[time.Monday].InsurancePlanID)
	assert.Equal(t, "amil", *sent[time.Monday].InsurancePlanID)
	assert.Nil(t, sent[time.Friday].InsurancePlanID)
}

func TestUpdateDays_OpenWeekSkipsPlanLookup(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, logger.Nop())

	_, err := svc.UpdateDays(context.Background(), "doc-1", nil)
	require.NoError(t, err)
	assert.Zero(t, client.planCalls)
	require.Len(t, client.updated, 1)
}

func TestUpdateDays_Validation(t *testing.T) {
	tests := []struct {
		name    string
		doctor  string
		days    []domain.InsuranceDay
		wantErr error
	}{
		{"no doctor", "", nil, ErrInvalidInput},
		{"weekday out of range", "doc-1", []domain.InsuranceDay{{Weekday: 7}}, ErrInvalidInput},
		{"duplicate weekday", "doc-1", []domain.InsuranceDay{{Weekday: time.Monday}, {Weekday: time.Monday}}, ErrInvalidInput},
		{"unknown plan", "doc-1", []domain.InsuranceDay{{Weekday: time.Monday, InsurancePlanID: ptr.Ptr("ghost")}}, ErrUnknownPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{plans: plans()}
			svc := NewService(client, logger.Nop())

			_, err := svc.UpdateDays(context.Background(), tt.doctor, tt.days)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, client.updated)
		})
	}
}

func TestService_BackendErrors(t *testing.T) {
	tests := []struct {
		err     error
		wantErr error
	}{
		{fmt.Errorf("%w: ERROR: bad", clinicapi.ErrValidation), ErrInvalidInput},
		{clinicapi.ErrNotFound, ErrDoctorNotFound},
		{clinicapi.ErrUnauthorized, ErrUnauthorized},
		{clinicapi.ErrUnavailable, ErrBackendUnavailable},
		{clinicapi.ErrInvalidResponse, ErrInternal},
	}

	for _, tt := range tests {
		svc := NewService(&fakeClient{err: tt.err}, logger.Nop())

		_, err := svc.ListPlans(context.Background())
		assert.ErrorIs(t, err, tt.wantErr)

		_, err = svc.GetDays(context.Background(), "doc-1")
		assert.ErrorIs(t, err, tt.wantErr)

		_, err = svc.UpdateDays(context.Background(), "doc-1", []domain.InsuranceDay{{Weekday: time.Monday}})
		assert.ErrorIs(t, err, tt.wantErr)
	}
}
