package generation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями генерации слотов.
// Записи генерации - неизменяемый аудит: только создание и чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория генераций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись генерации слотов
func (r *Repository) Create(ctx context.Context, gen *domain.SlotTimesGeneration) (*domain.SlotTimesGeneration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_times_generations").
		Columns(
			"booking_type_id",
			"start_date",
			"end_date",
			"user_id",
		).
		Values(
			gen.BookingTypeID,
			gen.StartDate,
			gen.EndDate,
			gen.UserID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&gen.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	gen.CreatedAt = createdAt.Time

	return gen, nil
}

// GetByID получает запись генерации по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SlotTimesGeneration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_type_id",
		"start_date",
		"end_date",
		"user_id",
		"created_at",
	).
		From("slot_times_generations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var gen domain.SlotTimesGeneration
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&gen.ID,
		&gen.BookingTypeID,
		&gen.StartDate,
		&gen.EndDate,
		&gen.UserID,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrGenerationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan generation: %v", ErrScanRow, err)
	}

	gen.CreatedAt = createdAt.Time

	return &gen, nil
}

// GetByBookingType получает историю генераций типа бронирования,
// от новых к старым
func (r *Repository) GetByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.SlotTimesGeneration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_type_id",
		"start_date",
		"end_date",
		"user_id",
		"created_at",
	).
		From("slot_times_generations").
		Where(squirrel.Eq{"booking_type_id": bookingTypeID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	generations := make([]*domain.SlotTimesGeneration, 0)

	for rows.Next() {
		var gen domain.SlotTimesGeneration
		var createdAt sql.NullTime

		err := rows.Scan(
			&gen.ID,
			&gen.BookingTypeID,
			&gen.StartDate,
			&gen.EndDate,
			&gen.UserID,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingType - scan row: %v", ErrScanRow, err)
		}

		gen.CreatedAt = createdAt.Time

		generations = append(generations, &gen)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingType - rows error: %v", ErrScanRow, err)
	}

	return generations, nil
}
