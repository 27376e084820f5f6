// Package daterange contains pure helpers for expanding a calendar date range
// and grouping the resulting days by weekday. Used by the slot generation
// use case; has no side effects.
package daterange

import (
	"errors"
	"fmt"
	"time"
)

// Weekday numbering used across the service: 0=Monday .. 6=Sunday.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// ErrInvalidRange возвращается при некорректном диапазоне дат:
// нулевые даты, start > end или диапазон, выходящий за пределы одного
// календарного года (намеренное ограничение размера генерации)
var ErrInvalidRange = errors.New("daterange: invalid date range")

// RangeDays возвращает все календарные даты от startDate до endDate
// включительно, по возрастанию. Время суток и таймзона входных значений
// игнорируются, каждая дата нормализуется к полуночи UTC.
func RangeDays(startDate, endDate time.Time) ([]time.Time, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidRange)
	}

	start := truncateToDay(startDate)
	end := truncateToDay(endDate)

	if start.After(end) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s",
			ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	if start.Year() != end.Year() {
		return nil, fmt.Errorf("%w: start date %s and end date %s must belong to the same year",
			ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	days := make([]time.Time, 0, end.Sub(start)/(24*time.Hour)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days, nil
}

// WeekdayMap группирует даты по дню недели (0=понедельник .. 6=воскресенье).
// В результате всегда присутствуют все 7 ключей; порядок дат внутри каждой
// группы повторяет порядок входного слайса.
func WeekdayMap(days []time.Time) map[int][]time.Time {
	result := make(map[int][]time.Time, 7)
	for weekday := Monday; weekday <= Sunday; weekday++ {
		result[weekday] = make([]time.Time, 0)
	}

	for _, day := range days {
		weekday := WeekdayOf(day)
		result[weekday] = append(result[weekday], day)
	}

	return result
}

// WeekdayOf возвращает день недели даты в нумерации сервиса (0=понедельник).
// time.Weekday считает воскресенье нулём, поэтому нужен сдвиг.
func WeekdayOf(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
