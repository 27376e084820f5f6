package create_booking

import (
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotTimeID int64   `json:"slotTimeId"`
	Notes      *string `json:"notes,omitempty"`
	Telephone  *string `json:"telephone,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		SlotTimeID: r.SlotTimeID,
		UserID:     userID,
		Notes:      r.Notes,
		Telephone:  r.Telephone,
	}
}
