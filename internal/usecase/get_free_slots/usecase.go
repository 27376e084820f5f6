package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingTypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
)

// appSlug идентификатор приложения в PagesService для fallback-редиректа
const appSlug = "reservations"

// UseCase use case для получения свободных слотов типа бронирования
type UseCase struct {
	bookingTypeRepo BookingTypeRepository
	slotRepo        SlotTimeRepository
	pagesClient     PagesServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingTypeRepo BookingTypeRepository,
	slotRepo SlotTimeRepository,
	pagesClient PagesServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingTypeRepo: bookingTypeRepo,
		slotRepo:        slotRepo,
		pagesClient:     pagesClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает свободные слоты типа бронирования в окне видимости,
// сгруппированные по календарным месяцам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	bookingType, err := uc.bookingTypeRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, bookingTypeRepo.ErrBookingTypeNotFound) {
			uc.logger.Warn("GetFreeSlots: booking type slug=%q not found", slug)
			return nil, ErrBookingTypeNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get booking type slug=%q: %v", slug, err)
		return nil, fmt.Errorf("%w: failed to get booking type: %v", ErrInternal, err)
	}

	// Окно видимости: от завтра до конца горизонта бронирования
	now := uc.timeProvider.Now()
	windowStart := now.AddDate(0, 0, domain.DefaultFreeSlotWindowStartDays)
	windowEnd := now.AddDate(0, 0, domain.DefaultFreeSlotWindowEndDays)

	slots, err := uc.slotRepo.GetFreeByBookingType(ctx, bookingType.ID, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get free slots for booking type id=%d: %v",
			bookingType.ID, err)
		return nil, fmt.Errorf("%w: failed to get free slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetFreeSlots: booking type=%q, found %d free slots", slug, len(slots))

	return &Response{
		BookingTypeID: bookingType.ID,
		Slug:          bookingType.Slug,
		Title:         bookingType.Title,
		WindowStart:   windowStart,
		WindowEnd:     windowEnd,
		Months:        groupByMonth(slots),
	}, nil
}

// FallbackURL возвращает URL для редиректа, когда тип бронирования не найден
func (uc *UseCase) FallbackURL(ctx context.Context) string {
	return uc.pagesClient.GetFallbackURL(ctx, appSlug)
}

// groupByMonth группирует слоты по календарным месяцам, сохраняя порядок
// сортировки по времени начала
func groupByMonth(slots []*domain.SlotTime) []MonthGroup {
	var groups []MonthGroup

	for _, slot := range slots {
		year, month := slot.StartTime.Year(), slot.StartTime.Month()

		if len(groups) == 0 || groups[len(groups)-1].Year != year || groups[len(groups)-1].Month != month.String() {
			groups = append(groups, MonthGroup{Year: year, Month: month.String()})
		}

		last := &groups[len(groups)-1]
		last.Slots = append(last.Slots, Slot{
			ID:              slot.ID,
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			DurationMinutes: slot.DurationMinutes(),
		})
	}

	return groups
}
