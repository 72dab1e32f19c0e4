package domain

// Default working-hours configuration, applied when the backend omits a field
const (
	DefaultAppointmentDurationMinutes = 30
	DefaultWorkStart                  = "08:00:00"
	DefaultWorkEnd                    = "18:00:00"
	DefaultLunchStart                 = "12:00:00"
	DefaultLunchEnd                   = "13:00:00"
)

// Business validation constants
const (
	MinAppointmentDurationMinutes = 5
	MaxAppointmentDurationMinutes = 480 // 8 hours
	MaxBlockReasonLength          = 200
)

// Labels and ids used by the projection
const (
	LunchBlockReason   = "Lunch"
	LunchBlockIDPrefix = "lunch-"
	DefaultBlockReason = "Blocked"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
