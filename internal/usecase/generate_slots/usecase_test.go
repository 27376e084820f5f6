package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingTypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slottime"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeBookingTypeRepo struct {
	bookingType *domain.BookingType
}

func (f *fakeBookingTypeRepo) GetByID(_ context.Context, id int64) (*domain.BookingType, error) {
	if f.bookingType == nil || f.bookingType.ID != id {
		return nil, bookingTypeRepo.ErrBookingTypeNotFound
	}
	return f.bookingType, nil
}

type fakePatternRepo struct {
	patterns []*domain.SlotTimePattern
}

func (f *fakePatternRepo) GetByBookingType(_ context.Context, _ int64) ([]*domain.SlotTimePattern, error) {
	return f.patterns, nil
}

type fakeGenerationRepo struct {
	created []*domain.SlotTimesGeneration
}

func (f *fakeGenerationRepo) Create(_ context.Context, g *domain.SlotTimesGeneration) (*domain.SlotTimesGeneration, error) {
	stored := *g
	stored.ID = int64(len(f.created) + 1)
	stored.CreatedAt = time.Now()
	f.created = append(f.created, &stored)
	return &stored, nil
}

type slotKey struct {
	bookingTypeID int64
	start, end    time.Time
}

type fakeSlotRepo struct {
	slots       map[slotKey]*domain.SlotTime
	overlapWith []*domain.SlotTime
	nextID      int64
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[slotKey]*domain.SlotTime)}
}

func (f *fakeSlotRepo) GetOrCreate(_ context.Context, slot *domain.SlotTime) (*domain.SlotTime, bool, error) {
	key := slotKey{slot.BookingTypeID, slot.StartTime, slot.EndTime}
	if existing, ok := f.slots[key]; ok {
		return existing, false, nil
	}

	for _, other := range f.overlapWith {
		if slot.BookingTypeID == other.BookingTypeID && slot.Overlaps(other) {
			return nil, false, slotRepo.ErrOverlap
		}
	}

	f.nextID++
	stored := *slot
	stored.ID = f.nextID
	f.slots[key] = &stored
	return &stored, true, nil
}

type fakeUserClient struct {
	user *userservice.User
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	if f.user == nil || f.user.ID != userID {
		return nil, userservice.ErrUserNotFound
	}
	return f.user, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookingTypeRepo *fakeBookingTypeRepo
	patternRepo     *fakePatternRepo
	generationRepo  *fakeGenerationRepo
	slotRepo        *fakeSlotRepo
	userClient      *fakeUserClient
	uc              *UseCase
}

func newFixture(t *testing.T, patterns []*domain.SlotTimePattern) *fixture {
	t.Helper()

	f := &fixture{
		bookingTypeRepo: &fakeBookingTypeRepo{
			bookingType: &domain.BookingType{
				ID:                1,
				Title:             "Консультация",
				Slug:              "consultation",
				SlotLengthMinutes: 30,
			},
		},
		patternRepo:    &fakePatternRepo{patterns: patterns},
		generationRepo: &fakeGenerationRepo{},
		slotRepo:       newFakeSlotRepo(),
		userClient:     &fakeUserClient{user: &userservice.User{ID: 42, Email: "op@example.com", IsOperator: true}},
	}

	f.uc = NewUseCase(
		f.bookingTypeRepo,
		f.patternRepo,
		f.generationRepo,
		f.slotRepo,
		f.userClient,
		time.UTC,
		nopLogger{},
	)
	return f
}

func pattern(weekday int, start, end string) *domain.SlotTimePattern {
	return &domain.SlotTimePattern{
		ID:            int64(weekday + 1),
		BookingTypeID: 1,
		Weekday:       weekday,
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
	}
}

// 2026-09-07 понедельник
var (
	monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC)
)

func TestGenerateSlots(t *testing.T) {
	t.Run("tiles single pattern over one day", func(t *testing.T) {
		f := newFixture(t, []*domain.SlotTimePattern{pattern(0, "09:00", "11:00")})

		resp, err := f.uc.Execute(context.Background(), &Request{
			BookingTypeID: 1,
			UserID:        42,
			StartDate:     monday,
			EndDate:       monday,
		})
		require.NoError(t, err)

		assert.Equal(t, 4, resp.CreatedCount)
		assert.Zero(t, resp.SkippedCount)
		assert.Zero(t, resp.ExistingCount)
		assert.Len(t, f.slotRepo.slots, 4)

		first, ok := f.slotRepo.slots[slotKey{1,
			time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC),
			time.Date(2026, time.September, 7, 9, 30, 0, 0, time.UTC)}]
		require.True(t, ok)
		assert.Equal(t, domain.SlotStatusFree, first.Status)
		require.NotNil(t, first.GenerationID)
		assert.Equal(t, resp.GenerationID, *first.GenerationID)
	})

	t.Run("short window tail is dropped", func(t *testing.T) {
		f := newFixture(t, []*domain.SlotTimePattern{pattern(0, "09:00", "10:45")})

		resp, err := f.uc.Execute(context.Background(), &Request{
			BookingTypeID: 1, UserID: 42, StartDate: monday, EndDate: monday,
		})
		require.NoError(t, err)

		// 09:00-10:45 вмещает только три слота по 30 минут
		assert.Equal(t, 3, resp.CreatedCount)
	})

	t.Run("multiple patterns over a week", func(t *testing.T) {
		f := newFixture(t, []*domain.SlotTimePattern{
			pattern(0, "09:00", "10:00"),
			pattern(6, "14:00", "15:00"),
		})

		resp, err := f.uc.Execute(context.Background(), &Request{
			BookingTypeID: 1, UserID: 42, StartDate: monday, EndDate: sunday,
		})
		require.NoError(t, err)

		// Одна неделя: по два слота в понедельник и воскресенье
		assert.Equal(t, 4, resp.CreatedCount)
	})

	t.Run("second run is idempotent", func(t *testing.T) {
		f := newFixture(t, []*domain.SlotTimePattern{pattern(0, "09:00", "11:00")})
		req := &Request{BookingTypeID: 1, UserID: 42, StartDate: monday, EndDate: monday}

		first, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, 4, first.CreatedCount)

		second, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Zero(t, second.CreatedCount)
		assert.Equal(t, 4, second.ExistingCount)
		assert.Len(t, f.slotRepo.slots, 4)
	})

	t.Run("overlapping candidates are skipped without aborting", func(t *testing.T) {
		f := newFixture(t, []*domain.SlotTimePattern{pattern(0, "09:00", "11:00")})
		f.slotRepo.overlapWith = []*domain.SlotTime{{
			BookingTypeID: 1,
			StartTime:     time.Date(2026, time.September, 7, 9, 15, 0, 0, time.UTC),
			EndTime:       time.Date(2026, time.September, 7, 9, 45, 0, 0, time.UTC),
		}}

		resp, err := f.uc.Execute(context.Background(), &Request{
			BookingTypeID: 1, UserID: 42, StartDate: monday, EndDate: monday,
		})
		require.NoError(t, err)

		// Кандидаты 09:00 и 09:30 пересекаются с чужим слотом
		assert.Equal(t, 2, resp.SkippedCount)
		assert.Equal(t, 2, resp.CreatedCount)
	})

	t.Run("no patterns names the booking type", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.uc.Execute(context.Background(), &Request{
			BookingTypeID: 1, UserID: 42, StartDate: monday, EndDate: monday,
		})
		require.ErrorIs(t, err, ErrNoPatterns)
		assert.Contains(t, err.Error(), "Консультация")
	})

	t.Run("cross-year range rejected before generation record", func(t *testing.T) {
		f := newFixture(t, []*domain.SlotTimePattern{pattern(0, "09:00", "11:00")})

		_, err := f.uc.Execute(context.Background(), &Request{
			BookingTypeID: 1,
			UserID:        42,
			StartDate:     time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2027, time.January, 3, 0, 0, 0, 0, time.UTC),
		})
		require.ErrorIs(t, err, ErrInvalidDateRange)
		assert.Empty(t, f.generationRepo.created)
	})

	t.Run("non-operator is rejected", func(t *testing.T) {
		f := newFixture(t, []*domain.SlotTimePattern{pattern(0, "09:00", "11:00")})
		f.userClient.user.IsOperator = false

		_, err := f.uc.Execute(context.Background(), &Request{
			BookingTypeID: 1, UserID: 42, StartDate: monday, EndDate: monday,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking type", func(t *testing.T) {
		f := newFixture(t, []*domain.SlotTimePattern{pattern(0, "09:00", "11:00")})

		_, err := f.uc.Execute(context.Background(), &Request{
			BookingTypeID: 99, UserID: 42, StartDate: monday, EndDate: monday,
		})
		assert.ErrorIs(t, err, ErrBookingTypeNotFound)
	})
}
