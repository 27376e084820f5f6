package create_pattern

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/patterns/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreatePatternRequest HTTP request model
type CreatePatternRequest struct {
	Weekday   int    `json:"weekday"`   // 0 = понедельник .. 6 = воскресенье
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом времени)
func (r *CreatePatternRequest) ToServiceRequest(bookingTypeID, userID int64) (*models.CreatePatternRequest, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreatePatternRequest{
		BookingTypeID: bookingTypeID,
		UserID:        userID,
		Weekday:       r.Weekday,
		StartTime:     startTime,
		EndTime:       endTime,
	}, nil
}
