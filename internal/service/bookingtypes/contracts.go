package bookingtypes

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingTypeRepository интерфейс репозитория типов бронирования
type BookingTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingType, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BookingType, error)
	List(ctx context.Context) ([]*domain.BookingType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
