package patterns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	btRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/bookingtype"
	patternRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/pattern"
	"github.com/m04kA/SMC-ReservationService/internal/service/patterns/models"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakePatternRepo struct {
	patterns  []*domain.SlotTimePattern
	createErr error
}

func (f *fakePatternRepo) Create(_ context.Context, p *domain.SlotTimePattern) (*domain.SlotTimePattern, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *p
	stored.ID = int64(len(f.patterns) + 1)
	f.patterns = append(f.patterns, &stored)
	return &stored, nil
}

func (f *fakePatternRepo) GetByBookingType(_ context.Context, _ int64) ([]*domain.SlotTimePattern, error) {
	return f.patterns, nil
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

func newService(repo *fakePatternRepo) *Service {
	return NewService(
		repo,
		&fakeBookingTypeRepo{bookingType: &domain.BookingType{ID: 1, Title: "Консультация", SlotLengthMinutes: 30}},
		&fakeUserClient{user: &userservice.User{ID: 42, IsOperator: true}},
		nopLogger{},
	)
}

func validRequest() *models.CreatePatternRequest {
	return &models.CreatePatternRequest{
		BookingTypeID: 1,
		UserID:        42,
		Weekday:       0,
		StartTime:     types.TimeString("09:00"),
		EndTime:       types.TimeString("18:00"),
	}
}

func TestCreatePattern(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newService(&fakePatternRepo{})

		resp, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "09:00", resp.StartTime)
		assert.Equal(t, "18:00", resp.EndTime)
	})

	t.Run("start after end", func(t *testing.T) {
		svc := newService(&fakePatternRepo{})

		req := validRequest()
		req.StartTime = types.TimeString("18:00")
		req.EndTime = types.TimeString("09:00")

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("invalid weekday", func(t *testing.T) {
		svc := newService(&fakePatternRepo{})

		req := validRequest()
		req.Weekday = 7

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("window shorter than slot length", func(t *testing.T) {
		svc := newService(&fakePatternRepo{})

		req := validRequest()
		req.StartTime = types.TimeString("09:00")
		req.EndTime = types.TimeString("09:15")

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("duplicate pattern", func(t *testing.T) {
		svc := newService(&fakePatternRepo{createErr: patternRepo.ErrDuplicatePattern})

		_, err := svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDuplicatePattern)
	})

	t.Run("non-operator rejected", func(t *testing.T) {
		svc := NewService(
			&fakePatternRepo{},
			&fakeBookingTypeRepo{bookingType: &domain.BookingType{ID: 1}},
			&fakeUserClient{user: &userservice.User{ID: 42, IsOperator: false}},
			nopLogger{},
		)

		_, err := svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking type", func(t *testing.T) {
		svc := newService(&fakePatternRepo{})

		req := validRequest()
		req.BookingTypeID = 99

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrBookingTypeNotFound)
	})
}

func TestListPatterns(t *testing.T) {
	t.Run("returns stored patterns", func(t *testing.T) {
		repo := &fakePatternRepo{}
		svc := newService(repo)

		_, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)

		resp, err := svc.ListByBookingType(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("unknown booking type", func(t *testing.T) {
		svc := newService(&fakePatternRepo{})

		_, err := svc.ListByBookingType(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBookingTypeNotFound)
	})
}
