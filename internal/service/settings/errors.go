package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных настройках
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDoctorNotFound возвращается, когда бэкенд не знает врача
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен
	ErrBackendUnavailable = errors.New("clinic backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
