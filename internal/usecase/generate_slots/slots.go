package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// tilePatternDay нарезает окно шаблона на конкретную дату на слоты фиксированной длины.
// Нарезка идет от начала окна; хвост окна короче длины слота отбрасывается.
func tilePatternDay(
	pattern *domain.SlotTimePattern,
	day time.Time,
	slotLength int,
	loc *time.Location,
) []*domain.SlotTime {
	cursor := pattern.StartTime.OnDate(day, loc)
	windowEnd := pattern.EndTime.OnDate(day, loc)

	var slots []*domain.SlotTime

	// Остаток окна считаем в целых минутах
	for int(windowEnd.Sub(cursor)/time.Minute) >= slotLength {
		end := cursor.Add(time.Duration(slotLength) * time.Minute)
		slots = append(slots, &domain.SlotTime{
			BookingTypeID: pattern.BookingTypeID,
			StartTime:     cursor,
			EndTime:       end,
			Status:        domain.SlotStatusFree,
		})
		cursor = end
	}

	return slots
}
