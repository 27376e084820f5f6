package slottime

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении unique constraint
const uniqueViolation = "23505"

var slotTimeColumns = []string{
	"id",
	"generation_id",
	"booking_type_id",
	"start_time",
	"end_time",
	"status",
	"user_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreate идемпотентно создает слот по ключу (booking_type_id,
// start_time, end_time). Возвращает слот и флаг created.
//
// Семантика:
//   - идентичный слот уже существует - возвращается существующий, created=false;
//   - новый слот пересекается по времени с другим слотом того же типа
//     бронирования - ErrOverlap (вызывающая сторона пропускает кандидата);
//   - конкурентная вставка того же ключа (два администратора запустили
//     генерацию одновременно) разрешается повторным чтением по unique
//     constraint, created=false.
func (r *Repository) GetOrCreate(ctx context.Context, slot *domain.SlotTime) (*domain.SlotTime, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// 1. Ищем идентичный слот
	existing, err := r.getByNaturalKey(ctx, executor, slot.BookingTypeID, slot.StartTime, slot.EndTime)
	if err != nil && !errors.Is(err, ErrSlotTimeNotFound) {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	// 2. Проверяем инвариант отсутствия пересечений
	if err := r.checkOverlap(ctx, executor, slot.BookingTypeID, slot.StartTime, slot.EndTime); err != nil {
		return nil, false, err
	}

	// 3. Вставляем новый слот
	query, args, err := psqlbuilder.Insert("slot_times").
		Columns(
			"generation_id",
			"booking_type_id",
			"start_time",
			"end_time",
			"status",
			"user_id",
		).
		Values(
			slot.GenerationID,
			slot.BookingTypeID,
			slot.StartTime,
			slot.EndTime,
			domain.SlotStatusFree,
			slot.UserID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, false, fmt.Errorf("%w: GetOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		// Конкурентная генерация вставила тот же слот - перечитываем
		if isUniqueViolation(err) {
			existing, getErr := r.getByNaturalKey(ctx, executor, slot.BookingTypeID, slot.StartTime, slot.EndTime)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("%w: GetOrCreate - execute insert: %v", ErrExecQuery, err)
	}

	slot.Status = domain.SlotStatusFree
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, true, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SlotTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotTimeColumns...).
		From("slot_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlotTime(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByIDForUpdate получает слот по ID с блокировкой FOR UPDATE.
// Должен вызываться внутри транзакции - это точка, в которой протокол
// занятия слота перепроверяет статус непосредственно перед записью.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.SlotTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotTimeColumns...).
		From("slot_times").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlotTime(executor.QueryRowContext(ctx, query, args...), "GetByIDForUpdate")
}

// GetFreeByBookingType получает свободные слоты типа бронирования в окне
// [windowStart, windowEnd), отсортированные по времени начала
func (r *Repository) GetFreeByBookingType(ctx context.Context, bookingTypeID int64, windowStart, windowEnd time.Time) ([]*domain.SlotTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotTimeColumns...).
		From("slot_times").
		Where(squirrel.Eq{
			"booking_type_id": bookingTypeID,
			"status":          domain.SlotStatusFree,
		}).
		Where(squirrel.Gt{"start_time": windowStart}).
		Where(squirrel.Lt{"end_time": windowEnd}).
		OrderBy("start_time ASC, end_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFreeByBookingType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFreeByBookingType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlotTimes(rows)
}

// GetByGeneration получает все слоты, созданные указанной генерацией
func (r *Repository) GetByGeneration(ctx context.Context, generationID int64) ([]*domain.SlotTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotTimeColumns...).
		From("slot_times").
		Where(squirrel.Eq{"generation_id": generationID}).
		OrderBy("booking_type_id ASC, start_time ASC, end_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByGeneration - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGeneration - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlotTimes(rows)
}

// MarkTaken переводит слот из free в taken, закрепляя его за пользователем.
// Переход защищен условием status='free': если слот уже занят конкурентной
// транзакцией, запрос не затронет ни одной строки и вернется ErrSlotAlreadyTaken.
func (r *Repository) MarkTaken(ctx context.Context, id int64, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_times").
		Set("status", domain.SlotStatusTaken).
		Set("user_id", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.SlotStatusFree,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkTaken - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkTaken - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkTaken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotAlreadyTaken
	}

	return nil
}

// getByNaturalKey ищет слот по естественному ключу (booking_type_id, start, end)
func (r *Repository) getByNaturalKey(ctx context.Context, executor DBExecutor, bookingTypeID int64, start, end time.Time) (*domain.SlotTime, error) {
	query, args, err := psqlbuilder.Select(slotTimeColumns...).
		From("slot_times").
		Where(squirrel.Eq{
			"booking_type_id": bookingTypeID,
			"start_time":      start,
			"end_time":        end,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByNaturalKey - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlotTime(executor.QueryRowContext(ctx, query, args...), "getByNaturalKey")
}

// overlapCond условие пересечения интервала [start, end) с существующими
// слотами типа бронирования. SQL-зеркало предиката domain.SlotTime.Overlaps:
// existing.start_time < end AND existing.end_time > start.
func overlapCond(bookingTypeID int64, start, end time.Time) squirrel.And {
	return squirrel.And{
		squirrel.Eq{"booking_type_id": bookingTypeID},
		squirrel.Lt{"start_time": end},
		squirrel.Gt{"end_time": start},
	}
}

// checkOverlap проверяет инвариант отсутствия пересечений: никакой
// существующий слот того же типа бронирования не пересекается с интервалом
// [start, end). Проверка симметричная - ловит и кандидата, начинающегося
// внутри существующего слота, и существующий слот, начинающийся внутри
// кандидата. Касание границ пересечением не считается.
func (r *Repository) checkOverlap(ctx context.Context, executor DBExecutor, bookingTypeID int64, start, end time.Time) error {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("slot_times").
		Where(overlapCond(bookingTypeID, start, end)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: checkOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("%w: checkOverlap - scan count: %v", ErrScanRow, err)
	}

	if count > 0 {
		return fmt.Errorf("%w: booking_type_id=%d, interval [%s, %s)",
			ErrOverlap, bookingTypeID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return nil
}

// scanSlotTime сканирует одну строку результата в слот
func (r *Repository) scanSlotTime(row *sql.Row, method string) (*domain.SlotTime, error) {
	var slot domain.SlotTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.GenerationID,
		&slot.BookingTypeID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Status,
		&slot.UserID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot time: %v", ErrScanRow, method, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// scanSlotTimes сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlotTimes(rows *sql.Rows) ([]*domain.SlotTime, error) {
	slots := make([]*domain.SlotTime, 0)

	for rows.Next() {
		var slot domain.SlotTime
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.GenerationID,
			&slot.BookingTypeID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Status,
			&slot.UserID,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlotTimes - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlotTimes - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
