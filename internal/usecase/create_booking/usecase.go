package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slottime"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifier"
	userClient "github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования (захвата слота)
type UseCase struct {
	slotRepo        SlotTimeRepository
	bookingRepo     BookingRepository
	bookingTypeRepo BookingTypeRepository
	userClient      UserServiceClient
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier может быть nil - тогда уведомления не отправляются.
func NewUseCase(
	slotRepo SlotTimeRepository,
	bookingRepo BookingRepository,
	bookingTypeRepo BookingTypeRepository,
	userClient UserServiceClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		bookingRepo:     bookingRepo,
		bookingTypeRepo: bookingTypeRepo,
		userClient:      userClient,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Захват слота выполняется в сериализуемой транзакции: из двух конкурирующих
// запросов на один слот ровно один завершается успешно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, slotTime=%d", req.UserID, req.SlotTimeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пользователя (email нужен для уведомления)
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var (
		result *domain.Booking
		slot   *domain.SlotTime
	)

	// 3. Захватываем слот в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем слот (FOR UPDATE)
		slot, err = uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotTimeID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotTimeNotFound) {
				uc.logger.Warn("CreateBooking: slot time id=%d not found", req.SlotTimeID)
				return ErrSlotTimeNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot time id=%d: %v", req.SlotTimeID, err)
			return fmt.Errorf("%w: failed to get slot time: %v", ErrInternal, err)
		}

		if !slot.IsFree() {
			uc.logger.Warn("CreateBooking: slot time id=%d is already taken", req.SlotTimeID)
			return ErrSlotAlreadyTaken
		}

		// 3.2. Создаем бронирование; уникальный индекс по slot_time_id -
		// последний арбитр при конкурентных захватах
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:     req.UserID,
			SlotTimeID: req.SlotTimeID,
			Notes:      req.Notes,
			Telephone:  req.Telephone,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTimeTaken) {
				uc.logger.Warn("CreateBooking: slot time id=%d taken concurrently", req.SlotTimeID)
				return ErrSlotAlreadyTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.3. Переводим слот в статус taken в той же транзакции
		if err := uc.slotRepo.MarkTaken(txCtx, req.SlotTimeID, req.UserID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotAlreadyTaken) {
				return ErrSlotAlreadyTaken
			}
			uc.logger.Error("CreateBooking: failed to mark slot taken: %v", err)
			return fmt.Errorf("%w: failed to mark slot taken: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for slot=%d", result.ID, req.SlotTimeID)

	// 4. Отправляем уведомления; ошибки доставки не отменяют бронирование
	uc.sendNotifications(ctx, user, slot)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		SlotTimeID:      result.SlotTimeID,
		BookingTypeID:   slot.BookingTypeID,
		SlotStart:       slot.StartTime,
		SlotEnd:         slot.EndTime,
		DurationMinutes: slot.DurationMinutes(),
		Notes:           result.Notes,
		Telephone:       result.Telephone,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// sendNotifications отправляет уведомления о созданном бронировании
// пользователю и операторам типа бронирования
func (uc *UseCase) sendNotifications(ctx context.Context, user *userClient.User, slot *domain.SlotTime) {
	if uc.notifier == nil {
		return
	}

	bookingType, err := uc.bookingTypeRepo.GetByID(ctx, slot.BookingTypeID)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to get booking type id=%d for notifications: %v",
			slot.BookingTypeID, err)
		return
	}

	notifyCtx := map[string]interface{}{
		"bookingType": bookingType.Title,
		"slotStart":   slot.StartTime,
		"slotEnd":     slot.EndTime,
		"userName":    user.FullName(),
	}

	if user.Email != "" {
		if err := uc.notifier.Notify(ctx, notifier.TemplateBookingCreatedBooker, []string{user.Email}, notifyCtx); err != nil {
			uc.logger.Warn("CreateBooking: failed to notify booker: %v", err)
		}
	}

	if bookingType.NotificationsEnabled() {
		if err := uc.notifier.Notify(ctx, notifier.TemplateBookingCreatedOperator, bookingType.NotificationEmails, notifyCtx); err != nil {
			uc.logger.Warn("CreateBooking: failed to notify operators: %v", err)
		}
	}
}
