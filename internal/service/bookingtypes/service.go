package bookingtypes

import (
	"context"
	"errors"
	"fmt"

	btRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookingtypes/models"
)

// Service сервис для чтения типов бронирования
type Service struct {
	bookingTypeRepo BookingTypeRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса типов бронирования
func NewService(bookingTypeRepo BookingTypeRepository, logger Logger) *Service {
	return &Service{
		bookingTypeRepo: bookingTypeRepo,
		logger:          logger,
	}
}

// List получает все типы бронирования
func (s *Service) List(ctx context.Context) (*models.BookingTypeListResponse, error) {
	s.logger.Info("List: fetching booking types")

	bookingTypes, err := s.bookingTypeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d booking types", len(bookingTypes))
	return models.FromDomainBookingTypeList(bookingTypes), nil
}

// GetBySlug получает тип бронирования по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.BookingTypeResponse, error) {
	s.logger.Info("GetBySlug: fetching booking type slug=%s", slug)

	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	bt, err := s.bookingTypeRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, btRepo.ErrBookingTypeNotFound) {
			s.logger.Warn("GetBySlug: booking type slug=%s not found", slug)
			return nil, ErrBookingTypeNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBySlug: successfully fetched booking type id=%d", bt.ID)
	return models.FromDomainBookingType(bt), nil
}
