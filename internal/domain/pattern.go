package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// SlotTimePattern is a weekly recurrence rule for a booking type: on the
// given weekday slots exist between StartTime and EndTime. A booking type
// may have several patterns on the same weekday (e.g. a morning and an
// afternoon block) but not two with the same start time.
type SlotTimePattern struct {
	ID            int64
	BookingTypeID int64
	Weekday       int // 0=Monday .. 6=Sunday
	StartTime     types.TimeString
	EndTime       types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WindowMinutes returns the length of the pattern's daily window in whole
// minutes.
func (p *SlotTimePattern) WindowMinutes() int {
	return p.StartTime.MinutesUntil(p.EndTime)
}

// IsValidWindow returns true if the pattern describes a non-empty window on
// a valid weekday.
func (p *SlotTimePattern) IsValidWindow() bool {
	if p.Weekday < 0 || p.Weekday > 6 {
		return false
	}
	if p.StartTime.Validate() != nil || p.EndTime.Validate() != nil {
		return false
	}
	return p.StartTime.IsBefore(p.EndTime)
}
