package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slottime"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.SlotTime
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.SlotTime, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotTimeNotFound
	}
	return s, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() *Service {
	start := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)

	return NewService(
		&fakeBookingRepo{bookings: map[int64]*domain.Booking{
			1: {ID: 1, UserID: 42, SlotTimeID: 7},
			2: {ID: 2, UserID: 13, SlotTimeID: 8},
		}},
		&fakeSlotRepo{slots: map[int64]*domain.SlotTime{
			7: {ID: 7, BookingTypeID: 1, StartTime: start, EndTime: start.Add(30 * time.Minute), Status: domain.SlotStatusTaken},
			8: {ID: 8, BookingTypeID: 1, StartTime: start.Add(time.Hour), EndTime: start.Add(90 * time.Minute), Status: domain.SlotStatusTaken},
		}},
		nopLogger{},
	)
}

func TestGetByID(t *testing.T) {
	t.Run("owner sees booking with slot details", func(t *testing.T) {
		svc := newService()

		resp, err := svc.GetByID(context.Background(), 1, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, int64(7), resp.SlotTimeID)
		assert.Equal(t, int64(1), resp.BookingTypeID)
		assert.Equal(t, 30, resp.DurationMinutes)
	})

	t.Run("foreign booking denied", func(t *testing.T) {
		svc := newService()

		_, err := svc.GetByID(context.Background(), 2, 42)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := newService()

		_, err := svc.GetByID(context.Background(), 99, 42)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetUserBookings(t *testing.T) {
	svc := newService()

	resp, err := svc.GetUserBookings(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(42), resp.Bookings[0].UserID)
}
