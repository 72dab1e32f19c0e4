package create_schedule_block

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createScheduleBlock "github.com/m04kA/SMC-AgendaService/internal/usecase/create_schedule_block"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

var zone = time.FixedZone("BRT", -3*3600)

type fakeUseCase struct {
	got *createScheduleBlock.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createScheduleBlock.Request) (*createScheduleBlock.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	start, _ := types.CombineDateAndTime(req.Date, string(req.StartTime), zone)
	end, _ := types.CombineDateAndTime(req.Date, string(req.EndTime), zone)
	return &createScheduleBlock.Response{Block: domain.ScheduleBlock{
		ID: "b-1", DoctorID: req.DoctorID, StartAt: &start, EndAt: &end, Reason: domain.DefaultBlockReason,
	}}, nil
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/doctors/{doctorId}/blocks", h.Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/doctors/doc-1/blocks", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(NewHandler(uc, zone, logger.Nop()), `{"date":"2026-03-10","startTime":"15:00","endTime":"16:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, types.TimeString("15:00"), uc.got.StartTime)
	assert.Equal(t, types.TimeString("16:00"), uc.got.EndTime)

	var body ScheduleBlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b-1", body.ID)
	assert.Equal(t, "2026-03-10 15:00:00", body.StartAt)
	assert.Equal(t, "Blocked", body.Reason)
}

func TestHandle_BadRequest(t *testing.T) {
	bodies := []string{
		`{"date":"2026-03-10","startTime":"15:00"}`,
		`{"date":"2026-13-10","startTime":"15:00","endTime":"16:00"}`,
		`{"date":"2026-03-10","startTime":"3pm","endTime":"16:00"}`,
		`{"date":"2026-03-10","startTime":"15:00","endTime":"16:00","reason":"` + strings.Repeat("x", 201) + `"}`,
	}

	for _, body := range bodies {
		uc := &fakeUseCase{}
		rec := serve(NewHandler(uc, zone, logger.Nop()), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Nil(t, uc.got)
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{createScheduleBlock.ErrInvalidTimeRange, http.StatusBadRequest},
		{createScheduleBlock.ErrInvalidInput, http.StatusBadRequest},
		{createScheduleBlock.ErrUnauthorized, http.StatusUnauthorized},
		{createScheduleBlock.ErrDoctorNotFound, http.StatusNotFound},
		{createScheduleBlock.ErrBackendUnavailable, http.StatusBadGateway},
		{createScheduleBlock.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := serve(NewHandler(&fakeUseCase{err: tt.err}, zone, logger.Nop()), `{"date":"2026-03-10","startTime":"16:00","endTime":"15:00"}`)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
