package domain

import "time"

// Booking is the record of a user having claimed a slot. Exactly one
// booking may exist per slot (enforced by a unique constraint); the
// existence of a booking is the source of truth for the slot being taken.
type Booking struct {
	ID         int64
	UserID     int64
	SlotTimeID int64
	Notes      *string
	Telephone  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
