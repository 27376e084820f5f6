package get_free_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingTypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
)

type fakeBookingTypeRepo struct {
	bookingType *domain.BookingType
}

func (f *fakeBookingTypeRepo) GetBySlug(_ context.Context, slug string) (*domain.BookingType, error) {
	if f.bookingType == nil || f.bookingType.Slug != slug {
		return nil, bookingTypeRepo.ErrBookingTypeNotFound
	}
	return f.bookingType, nil
}

type fakeSlotRepo struct {
	slots       []*domain.SlotTime
	gotWindow   [2]time.Time
	windowAsked bool
}

func (f *fakeSlotRepo) GetFreeByBookingType(_ context.Context, _ int64, windowStart, windowEnd time.Time) ([]*domain.SlotTime, error) {
	f.gotWindow = [2]time.Time{windowStart, windowEnd}
	f.windowAsked = true
	return f.slots, nil
}

type fakePagesClient struct {
	url string
}

func (f *fakePagesClient) GetFallbackURL(_ context.Context, _ string) string {
	return f.url
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func slotAt(id int64, start time.Time) *domain.SlotTime {
	return &domain.SlotTime{
		ID:            id,
		BookingTypeID: 1,
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		Status:        domain.SlotStatusFree,
	}
}

func newFixture(t *testing.T, slots []*domain.SlotTime) (*UseCase, *fakeSlotRepo) {
	t.Helper()

	slotRepo := &fakeSlotRepo{slots: slots}
	uc := NewUseCase(
		&fakeBookingTypeRepo{bookingType: &domain.BookingType{ID: 1, Slug: "consultation", Title: "Консультация"}},
		slotRepo,
		&fakePagesClient{url: "http://pages.local/"},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)}
	return uc, slotRepo
}

func TestGetFreeSlots(t *testing.T) {
	t.Run("groups slots by calendar month", func(t *testing.T) {
		uc, _ := newFixture(t, []*domain.SlotTime{
			slotAt(1, time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)),
			slotAt(2, time.Date(2026, time.September, 10, 9, 30, 0, 0, time.UTC)),
			slotAt(3, time.Date(2026, time.October, 2, 14, 0, 0, 0, time.UTC)),
			slotAt(4, time.Date(2026, time.November, 20, 10, 0, 0, 0, time.UTC)),
		})

		resp, err := uc.Execute(context.Background(), &Request{Slug: "consultation"})
		require.NoError(t, err)

		require.Len(t, resp.Months, 3)
		assert.Equal(t, "September", resp.Months[0].Month)
		assert.Equal(t, 2026, resp.Months[0].Year)
		assert.Len(t, resp.Months[0].Slots, 2)
		assert.Equal(t, "October", resp.Months[1].Month)
		assert.Len(t, resp.Months[1].Slots, 1)
		assert.Equal(t, "November", resp.Months[2].Month)

		assert.Equal(t, int64(1), resp.Months[0].Slots[0].ID)
		assert.Equal(t, 30, resp.Months[0].Slots[0].DurationMinutes)
	})

	t.Run("window spans tomorrow to booking horizon", func(t *testing.T) {
		uc, slotRepo := newFixture(t, nil)

		resp, err := uc.Execute(context.Background(), &Request{Slug: "consultation"})
		require.NoError(t, err)

		require.True(t, slotRepo.windowAsked)
		assert.Equal(t, time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC), slotRepo.gotWindow[0])
		assert.Equal(t, time.Date(2026, time.December, 5, 12, 0, 0, 0, time.UTC), slotRepo.gotWindow[1])
		assert.Empty(t, resp.Months)
	})

	t.Run("unknown slug", func(t *testing.T) {
		uc, _ := newFixture(t, nil)

		_, err := uc.Execute(context.Background(), &Request{Slug: "missing"})
		assert.ErrorIs(t, err, ErrBookingTypeNotFound)
		assert.Equal(t, "http://pages.local/", uc.FallbackURL(context.Background()))
	})

	t.Run("blank slug", func(t *testing.T) {
		uc, _ := newFixture(t, nil)

		_, err := uc.Execute(context.Background(), &Request{Slug: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
