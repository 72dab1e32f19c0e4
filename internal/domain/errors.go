package domain

import "errors"

var (
	// ErrInvalidDuration возвращается при недопустимой длительности приёма
	ErrInvalidDuration = errors.New("domain: appointment duration out of range")

	// ErrInvalidWorkHours возвращается при некорректном рабочем интервале
	ErrInvalidWorkHours = errors.New("domain: invalid work hours")

	// ErrInvalidLunchHours возвращается при некорректном обеденном перерыве
	ErrInvalidLunchHours = errors.New("domain: invalid lunch hours")
)
