package generations

import (
	"context"
	"errors"
	"fmt"

	btRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
	generationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/generation"
	"github.com/m04kA/SMC-ReservationService/internal/service/generations/models"
)

// Service сервис для чтения аудита прогонов генерации слотов.
// Прогоны создаются только генератором; сервис отдает историю операторам.
type Service struct {
	generationRepo  GenerationRepository
	slotRepo        SlotTimeRepository
	bookingTypeRepo BookingTypeRepository
	userClient      UserServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса прогонов генерации
func NewService(
	generationRepo GenerationRepository,
	slotRepo SlotTimeRepository,
	bookingTypeRepo BookingTypeRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		generationRepo:  generationRepo,
		slotRepo:        slotRepo,
		bookingTypeRepo: bookingTypeRepo,
		userClient:      userClient,
		logger:          logger,
	}
}

// GetByID получает прогон генерации вместе с порожденными им слотами.
// Доступно только операторам.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.GenerationDetailResponse, error) {
	s.logger.Info("GetGeneration: id=%d, user=%d", id, userID)

	if id <= 0 {
		return nil, fmt.Errorf("%w: generationID must be positive", ErrInvalidInput)
	}

	if err := s.checkOperatorAccess(ctx, userID); err != nil {
		return nil, err
	}

	gen, err := s.generationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generationRepo.ErrGenerationNotFound) {
			s.logger.Warn("GetGeneration: generation id=%d not found", id)
			return nil, ErrGenerationNotFound
		}
		s.logger.Error("GetGeneration: repository error for generation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.GetByGeneration(ctx, gen.ID)
	if err != nil {
		s.logger.Error("GetGeneration: failed to get slots for generation id=%d: %v", gen.ID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGeneration: generation id=%d has %d slots", gen.ID, len(slots))
	return models.FromDomainGenerationDetail(gen, slots), nil
}

// ListByBookingType получает историю прогонов генерации типа бронирования.
// Доступно только операторам.
func (s *Service) ListByBookingType(ctx context.Context, bookingTypeID int64, userID int64) (*models.GenerationListResponse, error) {
	s.logger.Info("ListGenerations: booking_type=%d, user=%d", bookingTypeID, userID)

	if bookingTypeID <= 0 {
		return nil, fmt.Errorf("%w: bookingTypeID must be positive", ErrInvalidInput)
	}

	if err := s.checkOperatorAccess(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.bookingTypeRepo.GetByID(ctx, bookingTypeID); err != nil {
		if errors.Is(err, btRepo.ErrBookingTypeNotFound) {
			s.logger.Warn("ListGenerations: booking type id=%d not found", bookingTypeID)
			return nil, ErrBookingTypeNotFound
		}
		s.logger.Error("ListGenerations: failed to get booking type id=%d: %v", bookingTypeID, err)
		return nil, fmt.Errorf("%w: ListByBookingType - repository error: %v", ErrInternal, err)
	}

	generations, err := s.generationRepo.GetByBookingType(ctx, bookingTypeID)
	if err != nil {
		s.logger.Error("ListGenerations: repository error for booking_type=%d: %v", bookingTypeID, err)
		return nil, fmt.Errorf("%w: ListByBookingType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListGenerations: successfully fetched %d generations for booking_type=%d",
		len(generations), bookingTypeID)
	return models.FromDomainGenerationList(generations), nil
}

// checkOperatorAccess проверяет, что пользователь является оператором
func (s *Service) checkOperatorAccess(ctx context.Context, userID int64) error {
	isOperator, err := s.userClient.IsOperator(ctx, userID)
	if err != nil {
		s.logger.Error("checkOperatorAccess: failed to check operator capability for user id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to check operator capability: %v", ErrInternal, err)
	}
	if !isOperator {
		s.logger.Warn("checkOperatorAccess: user id=%d is not an operator", userID)
		return ErrAccessDenied
	}
	return nil
}
