package insurance

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных плана или недели
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownPlan возвращается, если день ссылается на план, которого нет у клиники
	ErrUnknownPlan = errors.New("unknown insurance plan")

	// ErrDoctorNotFound возвращается, когда бэкенд не знает врача
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен
	ErrBackendUnavailable = errors.New("clinic backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
