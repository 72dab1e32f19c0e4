package clinicapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для метрик вызовов бэкенда
type Metrics interface {
	ObserveClinicAPI(endpoint, outcome string, elapsed time.Duration)
}
