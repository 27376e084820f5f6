package generations

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// GenerationRepository интерфейс репозитория прогонов генерации
type GenerationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SlotTimesGeneration, error)
	GetByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.SlotTimesGeneration, error)
}

// SlotTimeRepository интерфейс репозитория слотов
type SlotTimeRepository interface {
	GetByGeneration(ctx context.Context, generationID int64) ([]*domain.SlotTime, error)
}

// BookingTypeRepository интерфейс репозитория типов бронирования
type BookingTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingType, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	IsOperator(ctx context.Context, userID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
