package domain

import "time"

// SlotTimesGeneration is the audit record of one slot generation run:
// which booking type, which date range and who triggered it. Never mutated
// after creation; generated slots reference it.
type SlotTimesGeneration struct {
	ID            int64
	BookingTypeID int64
	StartDate     time.Time
	EndDate       time.Time
	UserID        *int64

	CreatedAt time.Time
}
