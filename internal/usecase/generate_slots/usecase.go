package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingTypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slottime"
	userClient "github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/pkg/daterange"
)

// UseCase use case для генерации слотов по шаблонам
type UseCase struct {
	bookingTypeRepo BookingTypeRepository
	patternRepo     PatternRepository
	generationRepo  GenerationRepository
	slotRepo        SlotTimeRepository
	userClient      UserServiceClient
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingTypeRepo BookingTypeRepository,
	patternRepo PatternRepository,
	generationRepo GenerationRepository,
	slotRepo SlotTimeRepository,
	userClient UserServiceClient,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingTypeRepo: bookingTypeRepo,
		patternRepo:     patternRepo,
		generationRepo:  generationRepo,
		slotRepo:        slotRepo,
		userClient:      userClient,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case генерации слотов.
// Генерация идемпотентна: уже существующие слоты переиспользуются,
// пересекающиеся кандидаты пропускаются без прерывания прогона.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: bookingType=%d, user=%d, range=%s..%s",
		req.BookingTypeID, req.UserID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права пользователя
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("GenerateSlots: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsOperator {
		uc.logger.Warn("GenerateSlots: user id=%d is not an operator", req.UserID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем тип бронирования
	bookingType, err := uc.bookingTypeRepo.GetByID(ctx, req.BookingTypeID)
	if err != nil {
		if errors.Is(err, bookingTypeRepo.ErrBookingTypeNotFound) {
			uc.logger.Warn("GenerateSlots: booking type id=%d not found", req.BookingTypeID)
			return nil, ErrBookingTypeNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get booking type id=%d: %v", req.BookingTypeID, err)
		return nil, fmt.Errorf("%w: failed to get booking type: %v", ErrInternal, err)
	}

	if !bookingType.HasValidSlotLength() {
		uc.logger.Warn("GenerateSlots: booking type id=%d has invalid slot length %d",
			bookingType.ID, bookingType.SlotLengthMinutes)
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidSlotLength, bookingType.SlotLengthMinutes)
	}

	// 4. Получаем шаблоны слотов
	patterns, err := uc.patternRepo.GetByBookingType(ctx, req.BookingTypeID)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get patterns: %v", err)
		return nil, fmt.Errorf("%w: failed to get patterns: %v", ErrInternal, err)
	}

	if len(patterns) == 0 {
		uc.logger.Warn("GenerateSlots: booking type %q has no patterns", bookingType.Title)
		return nil, fmt.Errorf("%w: %q", ErrNoPatterns, bookingType.Title)
	}

	// 5. Разворачиваем диапазон дат в дни и группируем по дням недели
	days, err := daterange.RangeDays(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("GenerateSlots: invalid date range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	weekdayMap := daterange.WeekdayMap(days)

	// 6. Создаем запись о прогоне генерации
	generation, err := uc.generationRepo.Create(ctx, &domain.SlotTimesGeneration{
		BookingTypeID: req.BookingTypeID,
		UserID:        &req.UserID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to create generation record: %v", err)
		return nil, fmt.Errorf("%w: failed to create generation record: %v", ErrInternal, err)
	}

	// 7. Нарезаем слоты: каждый шаблон применяется к каждому дню его дня недели
	resp := &Response{GenerationID: generation.ID}

	for _, pattern := range patterns {
		if !pattern.IsValidWindow() {
			uc.logger.Warn("GenerateSlots: pattern id=%d has invalid window %s-%s, skipped",
				pattern.ID, pattern.StartTime, pattern.EndTime)
			continue
		}

		for _, day := range weekdayMap[pattern.Weekday] {
			candidates := tilePatternDay(pattern, day, bookingType.SlotLengthMinutes, uc.location)

			for _, candidate := range candidates {
				candidate.GenerationID = &generation.ID

				_, created, err := uc.slotRepo.GetOrCreate(ctx, candidate)
				if err != nil {
					if errors.Is(err, slotRepo.ErrOverlap) {
						uc.logger.Warn("GenerateSlots: slot %s-%s overlaps existing slot, skipped",
							candidate.StartTime.Format(time.RFC3339), candidate.EndTime.Format(time.RFC3339))
						resp.SkippedCount++
						continue
					}
					uc.logger.Error("GenerateSlots: failed to persist slot %s-%s: %v",
						candidate.StartTime.Format(time.RFC3339), candidate.EndTime.Format(time.RFC3339), err)
					resp.SkippedCount++
					continue
				}

				if created {
					resp.CreatedCount++
				} else {
					resp.ExistingCount++
				}
			}
		}
	}

	uc.logger.Info("GenerateSlots: generation id=%d finished: created=%d, existing=%d, skipped=%d",
		generation.ID, resp.CreatedCount, resp.ExistingCount, resp.SkippedCount)

	return resp, nil
}
