package get_generation

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/generations/models"
)

type GenerationService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.GenerationDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
