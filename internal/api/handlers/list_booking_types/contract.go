package list_booking_types

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/bookingtypes/models"
)

type BookingTypeService interface {
	List(ctx context.Context) (*models.BookingTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
