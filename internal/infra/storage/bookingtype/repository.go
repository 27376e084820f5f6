package bookingtype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении unique constraint
const uniqueViolation = "23505"

var bookingTypeColumns = []string{
	"id",
	"title",
	"slug",
	"slot_length_minutes",
	"intro",
	"notification_emails_enable",
	"notification_emails",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с типами бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов бронирования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип бронирования
func (r *Repository) Create(ctx context.Context, bt *domain.BookingType) (*domain.BookingType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_types").
		Columns(
			"title",
			"slug",
			"slot_length_minutes",
			"intro",
			"notification_emails_enable",
			"notification_emails",
		).
		Values(
			bt.Title,
			bt.Slug,
			bt.SlotLengthMinutes,
			bt.Intro,
			bt.NotificationEmailsEnable,
			pq.Array(bt.NotificationEmails),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bt.CreatedAt = createdAt.Time
	bt.UpdatedAt = updatedAt.Time

	return bt, nil
}

// GetByID получает тип бронирования по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingType, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает тип бронирования по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.BookingType, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

// List получает все типы бронирования, отсортированные по заголовку
func (r *Repository) List(ctx context.Context) ([]*domain.BookingType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingTypeColumns...).
		From("booking_types").
		OrderBy("title ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookingTypes := make([]*domain.BookingType, 0)

	for rows.Next() {
		bt, err := scanBookingType(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookingTypes = append(bookingTypes, bt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookingTypes, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.BookingType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingTypeColumns...).
		From("booking_types").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	bt, err := scanBookingType(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking type: %v", ErrScanRow, method, err)
	}

	return bt, nil
}

// scanBookingType сканирует строку результата в тип бронирования.
// notification_emails хранится как text[], поэтому нужен pq.Array.
func scanBookingType(scan func(dest ...interface{}) error) (*domain.BookingType, error) {
	var bt domain.BookingType
	var createdAt, updatedAt sql.NullTime
	var emails pq.StringArray

	err := scan(
		&bt.ID,
		&bt.Title,
		&bt.Slug,
		&bt.SlotLengthMinutes,
		&bt.Intro,
		&bt.NotificationEmailsEnable,
		&emails,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	bt.NotificationEmails = []string(emails)
	bt.CreatedAt = createdAt.Time
	bt.UpdatedAt = updatedAt.Time

	return &bt, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
