package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/auth"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	defaultBreakerMaxFailures = 5
	defaultBreakerOpenTimeout = 30 * time.Second
	maxResponseBodyBytes      = 4 << 20
)

// Client клиент REST API клиники
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	breaker      *gobreaker.CircuitBreaker
	loc          *time.Location
	metrics      Metrics
	log          Logger
}

// NewClient создает новый экземпляр клиента API клиники
// loc используется для разбора дат без смещения ("YYYY-MM-DD HH:MM:SS")
func NewClient(cfg Config, loc *time.Location, m Metrics, log Logger) *Client {
	if loc == nil {
		loc = time.Local
	}
	if m == nil {
		m = noopMetrics{}
	}

	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = defaultBreakerMaxFailures
	}
	openTimeout := cfg.BreakerOpenTimeout
	if openTimeout <= 0 {
		openTimeout = defaultBreakerOpenTimeout
	}

	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		serviceToken: cfg.ServiceToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		loc:     loc,
		metrics: m,
		log:     log,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "clinic-api",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Ошибки клиента (404, 400, 401) не означают, что бэкенд лежит
		IsSuccessful: func(err error) bool {
			return err == nil || !(errors.Is(err, ErrUnavailable) || errors.Is(err, ErrInvalidResponse))
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("Circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return c
}

// ListDoctors получает список врачей клиники
func (c *Client) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	raw, err := c.do(ctx, "doctors", http.MethodGet, "/doctors", nil, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[DoctorDTO](raw, "data", "doctors")
	if err != nil {
		return nil, err
	}

	doctors := make([]domain.Doctor, 0, len(dtos))
	for _, dto := range dtos {
		doctors = append(doctors, ToDoctor(dto))
	}
	return doctors, nil
}

// GetDoctorSettings получает рабочие часы врача
// Отсутствующие поля заполняются значениями по умолчанию
func (c *Client) GetDoctorSettings(ctx context.Context, doctorID string) (*domain.WorkingHoursConfig, error) {
	query := url.Values{"doctor_id": {doctorID}}

	raw, err := c.do(ctx, "doctor_settings", http.MethodGet, "/doctor-settings", query, nil)
	if err != nil {
		return nil, err
	}

	var dto DoctorSettingsDTO
	if err := decodeObject(raw, &dto); err != nil {
		return nil, err
	}

	cfg := ToWorkingHours(dto, doctorID)
	return &cfg, nil
}

// UpdateDoctorSettings сохраняет рабочие часы врача
func (c *Client) UpdateDoctorSettings(ctx context.Context, cfg domain.WorkingHoursConfig) error {
	query := url.Values{"doctor_id": {cfg.DoctorID}}

	_, err := c.do(ctx, "doctor_settings_update", http.MethodPut, "/doctor-settings", query, FromWorkingHours(cfg))
	return err
}

// ListAppointments получает приёмы врача за день
func (c *Client) ListAppointments(ctx context.Context, doctorID string, date time.Time) ([]domain.Appointment, error) {
	raw, err := c.do(ctx, "appointments", http.MethodGet, "/appointments", dayQuery(doctorID, date), nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[AppointmentDTO](raw, "data", "appointments")
	if err != nil {
		return nil, err
	}

	return ToAppointments(dtos, c.loc), nil
}

// CreateAppointment создаёт приём
func (c *Client) CreateAppointment(ctx context.Context, appt domain.NewAppointment) (*domain.Appointment, error) {
	req := CreateAppointmentRequest{
		PatientID:       appt.PatientID,
		DoctorID:        appt.DoctorID,
		ScheduledAt:     types.FormatWireDateTime(appt.ScheduledAt.In(c.loc)),
		DurationMinutes: appt.DurationMinutes,
		Status:          appt.Status,
		InsurancePlanID: appt.InsurancePlanID,
	}

	raw, err := c.do(ctx, "appointments_create", http.MethodPost, "/appointments", nil, req)
	if err != nil {
		return nil, err
	}

	// Бэкенд может вернуть пустое тело, тогда собираем запись из запроса
	dto := AppointmentDTO{
		PatientID:       types.FlexString{Value: req.PatientID, Valid: true},
		DoctorID:        types.FlexString{Value: req.DoctorID, Valid: true},
		ScheduledAt:     &req.ScheduledAt,
		DurationMinutes: types.FlexInt{Value: req.DurationMinutes, Valid: true},
		Status:          &req.Status,
	}
	if req.InsurancePlanID != nil {
		dto.InsurancePlanID = types.FlexString{Value: *req.InsurancePlanID, Valid: true}
	}
	if err := decodeObject(raw, &dto); err != nil {
		return nil, err
	}

	created := ToAppointment(dto, c.loc)
	return &created, nil
}

// ListScheduleBlocks получает блокировки врача за день
func (c *Client) ListScheduleBlocks(ctx context.Context, doctorID string, date time.Time) ([]domain.ScheduleBlock, error) {
	raw, err := c.do(ctx, "schedule_blocks", http.MethodGet, "/schedule-blocks", dayQuery(doctorID, date), nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[ScheduleBlockDTO](raw, "data", "blocks")
	if err != nil {
		return nil, err
	}

	return ToScheduleBlocks(dtos, c.loc), nil
}

// CreateScheduleBlock создаёт блокировку
func (c *Client) CreateScheduleBlock(ctx context.Context, block domain.NewScheduleBlock) (*domain.ScheduleBlock, error) {
	req := CreateScheduleBlockRequest{
		DoctorID: block.DoctorID,
		StartAt:  types.FormatWireDateTime(block.StartAt.In(c.loc)),
		EndAt:    types.FormatWireDateTime(block.EndAt.In(c.loc)),
		Reason:   block.Reason,
	}

	raw, err := c.do(ctx, "schedule_blocks_create", http.MethodPost, "/schedule-blocks", nil, req)
	if err != nil {
		return nil, err
	}

	dto := ScheduleBlockDTO{
		DoctorID: types.FlexString{Value: req.DoctorID, Valid: true},
		StartAt:  &req.StartAt,
		EndAt:    &req.EndAt,
		Reason:   &req.Reason,
	}
	if err := decodeObject(raw, &dto); err != nil {
		return nil, err
	}

	created := ToScheduleBlock(dto, c.loc)
	return &created, nil
}

// GetInsuranceDays получает дни недели, закреплённые за страховыми планами
func (c *Client) GetInsuranceDays(ctx context.Context, doctorID string) ([]domain.InsuranceDay, error) {
	query := url.Values{"doctor_id": {doctorID}}

	raw, err := c.do(ctx, "insurance_days", http.MethodGet, "/doctor-insurance-days", query, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[InsuranceDayDTO](raw, "days", "data")
	if err != nil {
		return nil, err
	}

	return ToInsuranceDays(dtos), nil
}

// UpdateInsuranceDays сохраняет планы по дням недели, дни без плана открыты для всех
func (c *Client) UpdateInsuranceDays(ctx context.Context, doctorID string, days []domain.InsuranceDay) error {
	query := url.Values{"doctor_id": {doctorID}}

	_, err := c.do(ctx, "insurance_days_update", http.MethodPut, "/doctor-insurance-days", query, FromInsuranceDays(days))
	return err
}

// ListInsurancePlans получает страховые планы клиники
func (c *Client) ListInsurancePlans(ctx context.Context) ([]domain.InsurancePlan, error) {
	raw, err := c.do(ctx, "insurance_plans", http.MethodGet, "/insurance-plans", nil, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[InsurancePlanDTO](raw, "plans", "data")
	if err != nil {
		return nil, err
	}

	plans := make([]domain.InsurancePlan, 0, len(dtos))
	for _, dto := range dtos {
		plans = append(plans, ToInsurancePlan(dto))
	}
	return plans, nil
}

// CreateInsurancePlan создаёт страховой план
func (c *Client) CreateInsurancePlan(ctx context.Context, name string) (*domain.InsurancePlan, error) {
	req := CreateInsurancePlanRequest{Name: name}

	raw, err := c.do(ctx, "insurance_plans_create", http.MethodPost, "/insurance-plans", nil, req)
	if err != nil {
		return nil, err
	}

	dto := InsurancePlanDTO{Name: &req.Name}
	if err := decodeObject(raw, &dto); err != nil {
		return nil, err
	}

	plan := ToInsurancePlan(dto)
	return &plan, nil
}

// do выполняет запрос через circuit breaker и записывает метрики
func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, body interface{}) ([]byte, error) {
	start := time.Now()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.send(ctx, method, path, query, body)
	})

	c.metrics.ObserveClinicAPI(endpoint, outcome(err), time.Since(start))

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
		}
		if errors.Is(err, ErrUnavailable) {
			c.log.Error("Clinic API %s %s unavailable: %v", method, path, err)
		}
		return nil, err
	}

	return result.([]byte), nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, backendMessage(raw, resp.StatusCode))
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrValidation, backendMessage(raw, resp.StatusCode))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, backendMessage(raw, resp.StatusCode))
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, backendMessage(raw, resp.StatusCode))
	}
}

// token возвращает токен вызывающего, иначе сервисный токен
func (c *Client) token(ctx context.Context) string {
	if token := auth.TokenFromContext(ctx); token != "" {
		return token
	}
	return c.serviceToken
}

type noopMetrics struct{}

func (noopMetrics) ObserveClinicAPI(string, string, time.Duration) {}

func dayQuery(doctorID string, date time.Time) url.Values {
	from, to := types.DayBounds(date)
	return url.Values{
		"doctor_id": {doctorID},
		"from":      {from},
		"to":        {to},
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// backendMessage формирует сообщение вида "<error>: <message>" из тела ошибки
func backendMessage(raw []byte, status int) string {
	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && (body.Error != "" || body.Message != "") {
		code := body.Error
		if code == "" {
			code = "ERROR"
		}
		return strings.TrimSpace(code + ": " + body.Message)
	}

	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// decodeList разбирает массив или объект-обёртку {"<key>": [...]}
func decodeList[T any](raw []byte, keys ...string) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}

	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: failed to decode list: %v", ErrInvalidResponse, err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	for _, key := range keys {
		value, ok := envelope[key]
		if !ok {
			continue
		}
		return decodeList[T](value)
	}

	return []T{}, nil
}

// decodeObject разбирает объект или обёртку {"data": {...}} поверх уже заполненного out
func decodeObject(raw []byte, out interface{}) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && envelope.Data[0] == '{' {
		raw = envelope.Data
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
