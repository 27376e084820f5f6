package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingResponse бронирование вместе с данными занятого слота
type BookingResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	SlotTimeID int64   `json:"slotTimeId"`
	Notes      *string `json:"notes,omitempty"`
	Telephone  *string `json:"telephone,omitempty"`

	SlotStart       time.Time `json:"slotStart"`
	SlotEnd         time.Time `json:"slotEnd"`
	BookingTypeID   int64     `json:"bookingTypeId"`
	DurationMinutes int       `json:"durationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований пользователя
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking собирает ответ из бронирования и его слота
func FromDomainBooking(booking *domain.Booking, slot *domain.SlotTime) *BookingResponse {
	return &BookingResponse{
		ID:              booking.ID,
		UserID:          booking.UserID,
		SlotTimeID:      booking.SlotTimeID,
		Notes:           booking.Notes,
		Telephone:       booking.Telephone,
		SlotStart:       slot.StartTime,
		SlotEnd:         slot.EndTime,
		BookingTypeID:   slot.BookingTypeID,
		DurationMinutes: slot.DurationMinutes(),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
