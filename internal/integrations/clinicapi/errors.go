package clinicapi

import "errors"

var (
	// ErrNotFound возвращается при 404 от бэкенда
	ErrNotFound = errors.New("clinicapi client: not found")

	// ErrValidation возвращается при 400/422 от бэкенда
	ErrValidation = errors.New("clinicapi client: validation failed")

	// ErrUnauthorized возвращается при 401/403 от бэкенда
	ErrUnauthorized = errors.New("clinicapi client: unauthorized")

	// ErrUnavailable возвращается, когда бэкенд недоступен (сеть, таймаут, открытый circuit breaker)
	ErrUnavailable = errors.New("clinicapi client: backend unavailable")

	// ErrInvalidResponse возвращается при неожиданном статусе или теле ответа
	ErrInvalidResponse = errors.New("clinicapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clinicapi client: internal error")
)
