package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	generateSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/generate_slots"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	StartDate string `json:"startDate"` // "2026-09-07"
	EndDate   string `json:"endDate"`   // "2026-09-21"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *GenerateSlotsRequest) ToUseCaseRequest(bookingTypeID, userID int64) (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		BookingTypeID: bookingTypeID,
		UserID:        userID,
		StartDate:     startDate,
		EndDate:       endDate,
	}, nil
}
