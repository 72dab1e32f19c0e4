package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics.
// All methods are safe to call on a nil *Metrics (metrics disabled).
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Clinic backend metrics
	ClinicAPIRequestsTotal   *prometheus.CounterVec
	ClinicAPIRequestDuration *prometheus.HistogramVec

	// Agenda metrics
	SlotsProjected *prometheus.CounterVec
	CacheLookups   *prometheus.CounterVec

	// Database metrics
	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
}

// New creates metrics registered in the default Prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates metrics registered in reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		ClinicAPIRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "clinic_api_requests_total",
			Help:      "Total number of requests to the clinic backend",
		}, []string{"endpoint", "outcome"}),
		ClinicAPIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "clinic_api_request_duration_seconds",
			Help:      "Duration of requests to the clinic backend",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),

		SlotsProjected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "slots_projected_total",
			Help:      "Total number of projected agenda slots by status",
		}, []string{"status"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "day_cache_lookups_total",
			Help:      "Day data cache lookups by result",
		}, []string{"result"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Duration of database queries",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_open_connections",
			Help:      "Current number of open database connections",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ClinicAPIRequestsTotal,
		m.ClinicAPIRequestDuration,
		m.SlotsProjected,
		m.CacheLookups,
		m.DBQueryDuration,
		m.DBOpenConnections,
	)

	return m
}

// ObserveHTTP records one served HTTP request
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveClinicAPI records one call to the clinic backend
func (m *Metrics) ObserveClinicAPI(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ClinicAPIRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.ClinicAPIRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// AddSlots adds n projected slots with the given status
func (m *Metrics) AddSlots(status string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SlotsProjected.WithLabelValues(status).Add(float64(n))
}

// CacheLookup records a cache hit, miss or error
func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveDBQuery records one database query
func (m *Metrics) ObserveDBQuery(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())
}

// SetDBOpenConnections updates the connection pool gauge
func (m *Metrics) SetDBOpenConnections(n int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.Set(float64(n))
}
