package generations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	btRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
	generationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/generation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type fakeGenerationRepo struct {
	generations map[int64]*domain.SlotTimesGeneration
}

func (f *fakeGenerationRepo) GetByID(_ context.Context, id int64) (*domain.SlotTimesGeneration, error) {
	gen, ok := f.generations[id]
	if !ok {
		return nil, generationRepo.ErrGenerationNotFound
	}
	return gen, nil
}

func (f *fakeGenerationRepo) GetByBookingType(_ context.Context, bookingTypeID int64) ([]*domain.SlotTimesGeneration, error) {
	var out []*domain.SlotTimesGeneration
	for _, gen := range f.generations {
		if gen.BookingTypeID == bookingTypeID {
			out = append(out, gen)
		}
	}
	return out, nil
}

type fakeSlotRepo struct {
	slots []*domain.SlotTime
}

func (f *fakeSlotRepo) GetByGeneration(_ context.Context, generationID int64) ([]*domain.SlotTime, error) {
	var out []*domain.SlotTime
	for _, slot := range f.slots {
		if slot.GenerationID != nil && *slot.GenerationID == generationID {
			out = append(out, slot)
		}
	}
	return out, nil
}

type fakeBookingTypeRepo struct {
	bookingType *domain.BookingType
}

func (f *fakeBookingTypeRepo) GetByID(_ context.Context, id int64) (*domain.BookingType, error) {
	if f.bookingType == nil || f.bookingType.ID != id {
		return nil, btRepo.ErrBookingTypeNotFound
	}
	return f.bookingType, nil
}

type fakeUserClient struct {
	user *userservice.User
}

func (f *fakeUserClient) IsOperator(_ context.Context, userID int64) (bool, error) {
	if f.user == nil || f.user.ID != userID {
		return false, userservice.ErrUserNotFound
	}
	return f.user.IsOperator, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(operator bool) *Service {
	genCreated := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	return NewService(
		&fakeGenerationRepo{generations: map[int64]*domain.SlotTimesGeneration{
			5: {
				ID:            5,
				BookingTypeID: 1,
				StartDate:     time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
				EndDate:       time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC),
				UserID:        ptr.Ptr(int64(42)),
				CreatedAt:     genCreated,
			},
		}},
		&fakeSlotRepo{slots: []*domain.SlotTime{
			{
				ID:           10,
				GenerationID: ptr.Ptr(int64(5)),
				StartTime:    time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC),
				EndTime:      time.Date(2026, time.September, 7, 9, 30, 0, 0, time.UTC),
				Status:       domain.SlotStatusFree,
			},
			{
				ID:           11,
				GenerationID: ptr.Ptr(int64(5)),
				StartTime:    time.Date(2026, time.September, 7, 9, 30, 0, 0, time.UTC),
				EndTime:      time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC),
				Status:       domain.SlotStatusTaken,
			},
		}},
		&fakeBookingTypeRepo{bookingType: &domain.BookingType{ID: 1, Title: "Консультация"}},
		&fakeUserClient{user: &userservice.User{ID: 42, IsOperator: operator}},
		nopLogger{},
	)
}

func TestGetGeneration(t *testing.T) {
	t.Run("operator sees generation with its slots", func(t *testing.T) {
		svc := newService(true)

		resp, err := svc.GetByID(context.Background(), 5, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "2026-09-07", resp.StartDate)
		assert.Equal(t, "2026-09-13", resp.EndDate)
		assert.Equal(t, int64(42), resp.TriggeredBy)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, "free", resp.Slots[0].Status)
		assert.Equal(t, "taken", resp.Slots[1].Status)
	})

	t.Run("unknown generation", func(t *testing.T) {
		svc := newService(true)

		_, err := svc.GetByID(context.Background(), 99, 42)
		assert.ErrorIs(t, err, ErrGenerationNotFound)
	})

	t.Run("non-operator rejected", func(t *testing.T) {
		svc := newService(false)

		_, err := svc.GetByID(context.Background(), 5, 42)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestListGenerations(t *testing.T) {
	t.Run("returns booking type history", func(t *testing.T) {
		svc := newService(true)

		resp, err := svc.ListByBookingType(context.Background(), 1, 42)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(5), resp.Generations[0].ID)
	})

	t.Run("unknown booking type", func(t *testing.T) {
		svc := newService(true)

		_, err := svc.ListByBookingType(context.Background(), 99, 42)
		assert.ErrorIs(t, err, ErrBookingTypeNotFound)
	})

	t.Run("non-operator rejected", func(t *testing.T) {
		svc := newService(false)

		_, err := svc.ListByBookingType(context.Background(), 1, 42)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
