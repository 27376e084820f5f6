package domain

import "time"

// SlotTimeStatus represents the lifecycle state of a slot.
type SlotTimeStatus string

const (
	SlotStatusFree  SlotTimeStatus = "free"
	SlotStatusTaken SlotTimeStatus = "taken"
)

// SlotTime is a discrete bookable time interval generated from a pattern.
// Slots of the same booking type never overlap; a slot transitions from
// free to taken exactly once, atomically with the creation of its Booking.
type SlotTime struct {
	ID            int64
	GenerationID  *int64
	BookingTypeID int64
	StartTime     time.Time
	EndTime       time.Time
	Status        SlotTimeStatus
	UserID        *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree returns true if the slot can still be claimed.
func (s *SlotTime) IsFree() bool {
	return s.Status == SlotStatusFree
}

// DurationMinutes returns the slot length in whole minutes.
func (s *SlotTime) DurationMinutes() int {
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}

// Overlaps reports whether the [Start, End) intervals of two slots
// intersect. Touching boundaries do not count as overlap.
func (s *SlotTime) Overlaps(other *SlotTime) bool {
	return s.StartTime.Before(other.EndTime) && other.StartTime.Before(s.EndTime)
}
