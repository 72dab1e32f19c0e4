package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateTime is returned when a wire date-time cannot be parsed
var ErrInvalidDateTime = errors.New("invalid date-time format")

// Wire formats used by the clinic backend
const (
	WireDateTimeFormat = "2006-01-02 15:04:05"
	DateFormat         = "2006-01-02"
)

// local layouts are interpreted in the caller's location,
// offset layouts carry their own zone
var (
	localDateTimeLayouts  = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}
	offsetDateTimeLayouts = []string{time.RFC3339Nano, time.RFC3339}
)

// ParseWireDateTime parses backend date-times such as "2026-03-10 09:00:00".
// The first space is replaced by "T" before parsing, so "2026-03-10 09:00:00",
// "2026-03-10T09:00:00" and "2026-03-10T09:00" are all the same local instant in loc.
func ParseWireDateTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	value := strings.Replace(strings.TrimSpace(s), " ", "T", 1)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDateTime)
	}

	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range offsetDateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// ParseOptionalWireDateTime returns nil for empty or unparseable values
func ParseOptionalWireDateTime(s *string, loc *time.Location) *time.Time {
	if s == nil {
		return nil
	}
	t, err := ParseWireDateTime(*s, loc)
	if err != nil {
		return nil
	}
	return &t
}

// CombineDateAndTime joins the calendar day of date with a time of day ("HH:MM" or "HH:MM:SS")
// using the wire rules
func CombineDateAndTime(date time.Time, timeOfDay string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return ParseWireDateTime(DateKey(date)+" "+strings.TrimSpace(timeOfDay), loc)
}

// FormatWireDateTime formats t as "YYYY-MM-DD HH:MM:SS"
func FormatWireDateTime(t time.Time) string {
	return t.Format(WireDateTimeFormat)
}

// DateKey returns the "YYYY-MM-DD" calendar key of t in t's location
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// DayBounds returns the wire strings for 00:00:00 and 23:59:59 of the given day
func DayBounds(date time.Time) (from, to string) {
	key := DateKey(date)
	return key + " 00:00:00", key + " 23:59:59"
}
