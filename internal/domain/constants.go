package domain

// Default configuration values
const (
	DefaultSlotLengthMinutes = 30

	// Free slot display window relative to "now": slots are offered
	// starting tomorrow and up to ~3 months ahead
	DefaultFreeSlotWindowStartDays = 1
	DefaultFreeSlotWindowEndDays   = 95
)

// Business validation constants
const (
	MinSlotLengthMinutes = 5
	MaxSlotLengthMinutes = 480 // 8 hours

	MinWeekday = 0 // Monday
	MaxWeekday = 6 // Sunday

	MaxNotesLength     = 1000
	MaxTelephoneLength = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
