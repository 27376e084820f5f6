package patterns

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// PatternRepository интерфейс репозитория паттернов
type PatternRepository interface {
	Create(ctx context.Context, p *domain.SlotTimePattern) (*domain.SlotTimePattern, error)
	GetByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.SlotTimePattern, error)
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
