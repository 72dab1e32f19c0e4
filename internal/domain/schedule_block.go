package domain

import (
	"strings"
	"time"
)

// ScheduleBlock a non-appointment reservation of a doctor's time.
// StartAt and EndAt are nil when the backend value was missing or unparseable.
type ScheduleBlock struct {
	ID       string
	DoctorID string
	StartAt  *time.Time
	EndAt    *time.Time
	Reason   string
}

// Interval returns the blocked window
func (b *ScheduleBlock) Interval() (start, end time.Time, ok bool) {
	if b.StartAt == nil || b.EndAt == nil {
		return time.Time{}, time.Time{}, false
	}
	return *b.StartAt, *b.EndAt, true
}

// IsLunch returns true for the block synthesized from the lunch break
func (b *ScheduleBlock) IsLunch() bool {
	return strings.HasPrefix(b.ID, LunchBlockIDPrefix)
}

// NewScheduleBlock data needed to create a block
type NewScheduleBlock struct {
	DoctorID string
	StartAt  time.Time
	EndAt    time.Time
	Reason   string
}
