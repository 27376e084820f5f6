package patterns

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	btRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
	patternRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/pattern"
	"github.com/m04kA/SMC-ReservationService/internal/service/patterns/models"
)

// Service сервис для управления паттернами слотов.
//
// Семантика паттернов аддитивная: создание нового паттерна не трогает
// уже сгенерированные слоты. Новые слоты по нему появятся при следующем
// запуске генерации. Удаления и реконсиляции нет.
type Service struct {
	patternRepo     PatternRepository
	bookingTypeRepo BookingTypeRepository
	userClient      UserServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса паттернов
func NewService(
	patternRepo PatternRepository,
	bookingTypeRepo BookingTypeRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		patternRepo:     patternRepo,
		bookingTypeRepo: bookingTypeRepo,
		userClient:      userClient,
		logger:          logger,
	}
}

// Create создает паттерн для типа бронирования.
// Доступно только операторам.
func (s *Service) Create(ctx context.Context, req *models.CreatePatternRequest) (*models.PatternResponse, error) {
	s.logger.Info("CreatePattern: booking_type=%d, weekday=%d, window=%s-%s, user=%d",
		req.BookingTypeID, req.Weekday, req.StartTime, req.EndTime, req.UserID)

	if req.BookingTypeID <= 0 {
		return nil, fmt.Errorf("%w: bookingTypeID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// Проверяем права оператора
	if err := s.checkOperatorAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// Проверяем существование типа бронирования
	bookingType, err := s.bookingTypeRepo.GetByID(ctx, req.BookingTypeID)
	if err != nil {
		if errors.Is(err, btRepo.ErrBookingTypeNotFound) {
			s.logger.Warn("CreatePattern: booking type id=%d not found", req.BookingTypeID)
			return nil, ErrBookingTypeNotFound
		}
		s.logger.Error("CreatePattern: failed to get booking type id=%d: %v", req.BookingTypeID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	pattern := &domain.SlotTimePattern{
		BookingTypeID: req.BookingTypeID,
		Weekday:       req.Weekday,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}

	if !pattern.IsValidWindow() {
		s.logger.Warn("CreatePattern: invalid window weekday=%d, %s-%s",
			req.Weekday, req.StartTime, req.EndTime)
		return nil, fmt.Errorf("%w: weekday=%d, window=%s-%s",
			ErrInvalidWindow, req.Weekday, req.StartTime, req.EndTime)
	}

	// Окно должно вмещать хотя бы один слот, иначе генератор никогда
	// ничего из него не нарежет
	if pattern.WindowMinutes() < bookingType.SlotLengthMinutes {
		s.logger.Warn("CreatePattern: window %s-%s is shorter than slot length %d",
			req.StartTime, req.EndTime, bookingType.SlotLengthMinutes)
		return nil, fmt.Errorf("%w: window %s-%s does not fit a %d-minute slot",
			ErrInvalidWindow, req.StartTime, req.EndTime, bookingType.SlotLengthMinutes)
	}

	created, err := s.patternRepo.Create(ctx, pattern)
	if err != nil {
		if errors.Is(err, patternRepo.ErrDuplicatePattern) {
			s.logger.Warn("CreatePattern: duplicate pattern for booking_type=%d, weekday=%d, start=%s",
				req.BookingTypeID, req.Weekday, req.StartTime)
			return nil, ErrDuplicatePattern
		}
		s.logger.Error("CreatePattern: failed to create pattern: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePattern: successfully created pattern id=%d", created.ID)
	return models.FromDomainPattern(created), nil
}

// ListByBookingType получает паттерны типа бронирования
func (s *Service) ListByBookingType(ctx context.Context, bookingTypeID int64) (*models.PatternListResponse, error) {
	s.logger.Info("ListPatterns: booking_type=%d", bookingTypeID)

	if bookingTypeID <= 0 {
		return nil, fmt.Errorf("%w: bookingTypeID must be positive", ErrInvalidInput)
	}

	if _, err := s.bookingTypeRepo.GetByID(ctx, bookingTypeID); err != nil {
		if errors.Is(err, btRepo.ErrBookingTypeNotFound) {
			s.logger.Warn("ListPatterns: booking type id=%d not found", bookingTypeID)
			return nil, ErrBookingTypeNotFound
		}
		s.logger.Error("ListPatterns: failed to get booking type id=%d: %v", bookingTypeID, err)
		return nil, fmt.Errorf("%w: ListByBookingType - repository error: %v", ErrInternal, err)
	}

	patterns, err := s.patternRepo.GetByBookingType(ctx, bookingTypeID)
	if err != nil {
		s.logger.Error("ListPatterns: repository error for booking_type=%d: %v", bookingTypeID, err)
		return nil, fmt.Errorf("%w: ListByBookingType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPatterns: successfully fetched %d patterns for booking_type=%d",
		len(patterns), bookingTypeID)
	return models.FromDomainPatternList(patterns), nil
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
