package get_free_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingTypeRepository интерфейс репозитория типов бронирования
type BookingTypeRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.BookingType, error)
}

// SlotTimeRepository интерфейс репозитория слотов
type SlotTimeRepository interface {
	GetFreeByBookingType(ctx context.Context, bookingTypeID int64, windowStart, windowEnd time.Time) ([]*domain.SlotTime, error)
}

// PagesServiceClient интерфейс клиента навигации для fallback-редиректа
type PagesServiceClient interface {
	GetFallbackURL(ctx context.Context, appSlug string) string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
