package daydata

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда бэкенд не знает врача
	ErrDoctorNotFound = errors.New("daydata: doctor not found")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен
	ErrUnauthorized = errors.New("daydata: unauthorized")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен
	ErrBackendUnavailable = errors.New("daydata: clinic backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("daydata: internal error")
)
