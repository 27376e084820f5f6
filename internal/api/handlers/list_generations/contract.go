package list_generations

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/generations/models"
)

type GenerationService interface {
	ListByBookingType(ctx context.Context, bookingTypeID int64, userID int64) (*models.GenerationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
