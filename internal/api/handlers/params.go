package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ErrMissingParam возвращается, если обязательный параметр не передан
var ErrMissingParam = errors.New("missing required parameter")

// ParseDate разбирает дату YYYY-MM-DD как полночь в часовом поясе клиники
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingParam
	}
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(domain.DateFormat, s, loc)
}
