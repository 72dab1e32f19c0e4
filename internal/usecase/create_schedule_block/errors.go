package create_schedule_block

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule_block: invalid input data")

	// ErrInvalidTimeRange возвращается, если начало блокировки не раньше конца
	ErrInvalidTimeRange = errors.New("create_schedule_block: start time must be before end time")

	// ErrDoctorNotFound возвращается, когда бэкенд не знает врача
	ErrDoctorNotFound = errors.New("create_schedule_block: doctor not found")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен
	ErrUnauthorized = errors.New("create_schedule_block: unauthorized")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен
	ErrBackendUnavailable = errors.New("create_schedule_block: clinic backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule_block: internal error")
)
