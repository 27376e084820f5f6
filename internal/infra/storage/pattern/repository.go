package pattern

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

var patternColumns = []string{
	"id",
	"booking_type_id",
	"weekday",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с паттернами слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория паттернов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый паттерн. Ключ (booking_type_id, weekday, start_time)
// уникален: повторное время начала в тот же день недели - это дубликат.
func (r *Repository) Create(ctx context.Context, p *domain.SlotTimePattern) (*domain.SlotTimePattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_time_patterns").
		Columns(
			"booking_type_id",
			"weekday",
			"start_time",
			"end_time",
		).
		Values(
			p.BookingTypeID,
			p.Weekday,
			p.StartTime,
			p.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePattern
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает паттерн по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SlotTimePattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patternColumns...).
		From("slot_time_patterns").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.SlotTimePattern
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.BookingTypeID,
		&p.Weekday,
		&p.StartTime,
		&p.EndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPatternNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pattern: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// GetByBookingType получает все паттерны типа бронирования,
// отсортированные по дню недели и времени начала
func (r *Repository) GetByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.SlotTimePattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patternColumns...).
		From("slot_time_patterns").
		Where(squirrel.Eq{"booking_type_id": bookingTypeID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	patterns := make([]*domain.SlotTimePattern, 0)

	for rows.Next() {
		var p domain.SlotTimePattern
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.BookingTypeID,
			&p.Weekday,
			&p.StartTime,
			&p.EndTime,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingType - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time

		patterns = append(patterns, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingType - rows error: %v", ErrScanRow, err)
	}

	return patterns, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
