package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slottime"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotTimeRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotTimeRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь может видеть только собственные бронирования.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	slot, err := s.slotRepo.GetByID(ctx, booking.SlotTimeID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotTimeNotFound) {
			// Слот бронирования не должен исчезать: ядро слоты не удаляет
			s.logger.Error("GetByID: slot id=%d for booking id=%d not found", booking.SlotTimeID, id)
			return nil, fmt.Errorf("%w: GetByID - slot time missing for booking", ErrInternal)
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", booking.SlotTimeID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, slot), nil
}

// GetUserBookings получает историю бронирований пользователя
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	responses := make([]*models.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		slot, err := s.slotRepo.GetByID(ctx, booking.SlotTimeID)
		if err != nil {
			s.logger.Error("GetUserBookings: failed to fetch slot id=%d for booking id=%d: %v",
				booking.SlotTimeID, booking.ID, err)
			return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
		}
		responses = append(responses, models.FromDomainBooking(booking, slot))
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(responses), userID)
	return &models.BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}, nil
}
