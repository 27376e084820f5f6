package get_booking_type

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/bookingtypes/models"
)

type BookingTypeService interface {
	GetBySlug(ctx context.Context, slug string) (*models.BookingTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
