package list_patterns

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/patterns/models"
)

type PatternService interface {
	ListByBookingType(ctx context.Context, bookingTypeID int64) (*models.PatternListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
