package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slottime"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifier"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type fakeSlotRepo struct {
	slot          *domain.SlotTime
	markTakenErr  error
	markedTakenBy *int64
}

func (f *fakeSlotRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.SlotTime, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotTimeNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) MarkTaken(_ context.Context, _ int64, userID int64) error {
	if f.markTakenErr != nil {
		return f.markTakenErr
	}
	f.slot.Status = domain.SlotStatusTaken
	f.markedTakenBy = &userID
	return nil
}

type fakeBookingRepo struct {
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *b
	stored.ID = 100
	stored.CreatedAt = time.Now()
	f.created = &stored
	return &stored, nil
}

type fakeBookingTypeRepo struct {
	bookingType *domain.BookingType
}

func (f *fakeBookingTypeRepo) GetByID(_ context.Context, _ int64) (*domain.BookingType, error) {
	return f.bookingType, nil
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

type sentNotification struct {
	template   string
	recipients []string
}

type fakeNotifier struct {
	sent      []sentNotification
	notifyErr error
}

func (f *fakeNotifier) Notify(_ context.Context, template string, recipients []string, _ map[string]interface{}) error {
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.sent = append(f.sent, sentNotification{template: template, recipients: recipients})
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	slotRepo        *fakeSlotRepo
	bookingRepo     *fakeBookingRepo
	bookingTypeRepo *fakeBookingTypeRepo
	userClient      *fakeUserClient
	notifier        *fakeNotifier
	txManager       *fakeTxManager
	uc              *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		slotRepo: &fakeSlotRepo{
			slot: &domain.SlotTime{
				ID:            7,
				BookingTypeID: 1,
				StartTime:     time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC),
				EndTime:       time.Date(2026, time.September, 7, 9, 30, 0, 0, time.UTC),
				Status:        domain.SlotStatusFree,
			},
		},
		bookingRepo: &fakeBookingRepo{},
		bookingTypeRepo: &fakeBookingTypeRepo{
			bookingType: &domain.BookingType{
				ID:                       1,
				Title:                    "Консультация",
				NotificationEmailsEnable: true,
				NotificationEmails:       []string{"operator@example.com"},
			},
		},
		userClient: &fakeUserClient{user: &userservice.User{ID: 42, Email: "user@example.com"}},
		notifier:   &fakeNotifier{},
		txManager:  &fakeTxManager{},
	}

	f.uc = NewUseCase(
		f.slotRepo,
		f.bookingRepo,
		f.bookingTypeRepo,
		f.userClient,
		f.notifier,
		f.txManager,
		nopLogger{},
	)
	return f
}

func TestCreateBooking(t *testing.T) {
	t.Run("success claims slot and notifies", func(t *testing.T) {
		f := newFixture(t)

		resp, err := f.uc.Execute(context.Background(), &Request{
			SlotTimeID: 7,
			UserID:     42,
			Notes:      ptr.Ptr("позвоните заранее"),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, int64(7), resp.SlotTimeID)
		assert.Equal(t, int64(1), resp.BookingTypeID)
		assert.Equal(t, 30, resp.DurationMinutes)

		assert.Equal(t, 1, f.txManager.calls)
		assert.Equal(t, domain.SlotStatusTaken, f.slotRepo.slot.Status)
		require.NotNil(t, f.slotRepo.markedTakenBy)
		assert.Equal(t, int64(42), *f.slotRepo.markedTakenBy)

		require.Len(t, f.notifier.sent, 2)
		assert.Equal(t, notifier.TemplateBookingCreatedBooker, f.notifier.sent[0].template)
		assert.Equal(t, []string{"user@example.com"}, f.notifier.sent[0].recipients)
		assert.Equal(t, notifier.TemplateBookingCreatedOperator, f.notifier.sent[1].template)
		assert.Equal(t, []string{"operator@example.com"}, f.notifier.sent[1].recipients)
	})

	t.Run("taken slot is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.slotRepo.slot.Status = domain.SlotStatusTaken

		_, err := f.uc.Execute(context.Background(), &Request{SlotTimeID: 7, UserID: 42})
		require.ErrorIs(t, err, ErrSlotAlreadyTaken)
		assert.Nil(t, f.bookingRepo.created)
		assert.Empty(t, f.notifier.sent)
	})

	t.Run("concurrent claim loses on unique violation", func(t *testing.T) {
		f := newFixture(t)
		f.bookingRepo.createErr = bookingRepo.ErrSlotTimeTaken

		_, err := f.uc.Execute(context.Background(), &Request{SlotTimeID: 7, UserID: 42})
		assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{SlotTimeID: 999, UserID: 42})
		assert.ErrorIs(t, err, ErrSlotTimeNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{SlotTimeID: 7, UserID: 999})
		require.ErrorIs(t, err, ErrUserNotFound)
		assert.Zero(t, f.txManager.calls)
	})

	t.Run("notification failure does not undo the booking", func(t *testing.T) {
		f := newFixture(t)
		f.notifier.notifyErr = notifier.ErrPublish

		resp, err := f.uc.Execute(context.Background(), &Request{SlotTimeID: 7, UserID: 42})
		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, domain.SlotStatusTaken, f.slotRepo.slot.Status)
	})

	t.Run("nil notifier skips notifications", func(t *testing.T) {
		f := newFixture(t)
		f.uc = NewUseCase(f.slotRepo, f.bookingRepo, f.bookingTypeRepo, f.userClient, nil, f.txManager, nopLogger{})

		resp, err := f.uc.Execute(context.Background(), &Request{SlotTimeID: 7, UserID: 42})
		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.ID)
	})

	t.Run("oversized notes rejected", func(t *testing.T) {
		f := newFixture(t)

		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'x'
		}

		_, err := f.uc.Execute(context.Background(), &Request{
			SlotTimeID: 7,
			UserID:     42,
			Notes:      ptr.Ptr(string(long)),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
