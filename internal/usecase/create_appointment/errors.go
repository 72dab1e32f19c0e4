package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate возвращается, если дата или время приёма уже прошли
	ErrInvalidDate = errors.New("create_appointment: appointment time is in the past")

	// ErrDoctorNotFound возвращается, когда бэкенд не знает врача
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrInsuranceDayRestricted возвращается, если день закреплён за другим планом страховки
	ErrInsuranceDayRestricted = errors.New("create_appointment: day is restricted to another insurance plan")

	// ErrSlotNotAvailable возвращается, если время пересекается с приёмом или блокировкой
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrLocked возвращается, если агенда дня занята другим запросом
	ErrLocked = errors.New("create_appointment: agenda is locked by another request")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен
	ErrUnauthorized = errors.New("create_appointment: unauthorized")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен
	ErrBackendUnavailable = errors.New("create_appointment: clinic backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
