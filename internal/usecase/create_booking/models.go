package create_booking

import "time"

// Request входные данные для создания бронирования
type Request struct {
	SlotTimeID int64
	UserID     int64
	Notes      *string
	Telephone  *string
}

// Response результат создания бронирования
type Response struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	SlotTimeID      int64     `json:"slotTimeId"`
	BookingTypeID   int64     `json:"bookingTypeId"`
	SlotStart       time.Time `json:"slotStart"`
	SlotEnd         time.Time `json:"slotEnd"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           *string   `json:"notes,omitempty"`
	Telephone       *string   `json:"telephone,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
