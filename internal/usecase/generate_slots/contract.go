package generate_slots

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
)

// BookingTypeRepository интерфейс репозитория типов бронирования
type BookingTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingType, error)
}

// PatternRepository интерфейс репозитория шаблонов слотов
type PatternRepository interface {
	GetByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.SlotTimePattern, error)
}

// GenerationRepository интерфейс репозитория прогонов генерации
type GenerationRepository interface {
	Create(ctx context.Context, generation *domain.SlotTimesGeneration) (*domain.SlotTimesGeneration, error)
}

// SlotTimeRepository интерфейс репозитория слотов
type SlotTimeRepository interface {
	GetOrCreate(ctx context.Context, slot *domain.SlotTime) (*domain.SlotTime, bool, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
