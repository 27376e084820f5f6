package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is stored in the database as a string and compared lexicographically,
// which is correct for the fixed-width "15:04" layout.
type TimeString string

const timeStringLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// NewTimeString creates a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses and validates s as "HH:MM".
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a parseable "HH:MM" time.
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero returns true for an empty value.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String returns the "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// Hour returns the hour component (0-23).
func (ts TimeString) Hour() int {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return 0
	}
	return t.Hour()
}

// Minute returns the minute component (0-59).
func (ts TimeString) Minute() int {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return 0
	}
	return t.Minute()
}

// TotalMinutes returns minutes elapsed since midnight.
func (ts TimeString) TotalMinutes() int {
	return ts.Hour()*60 + ts.Minute()
}

// IsBefore reports whether ts is strictly earlier than other.
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.TotalMinutes() < other.TotalMinutes()
}

// IsAfter reports whether ts is strictly later than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.TotalMinutes() > other.TotalMinutes()
}

// AddMinutes returns ts shifted forward by the given number of minutes.
// The result must stay within the same day, otherwise ErrTimeOutOfRange.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := ts.Validate(); err != nil {
		return "", err
	}
	total := ts.TotalMinutes() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, ts, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesUntil returns the whole-minute distance from ts to other.
// Negative when other is earlier than ts.
func (ts TimeString) MinutesUntil(other TimeString) int {
	return other.TotalMinutes() - ts.TotalMinutes()
}

// OnDate combines the time of day with the calendar date of day in the given
// location and returns an absolute timestamp. This is the single place where
// a wall-clock time becomes a zoned instant; DST transitions resolve here
// according to time.Date semantics.
func (ts TimeString) OnDate(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), ts.Hour(), ts.Minute(), 0, 0, loc)
}

// Value implements driver.Valuer for storing TimeString as text.
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as
// "HH:MM:SS"; the seconds part is truncated.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*ts = TimeString(normalizeTime(v))
	case []byte:
		*ts = TimeString(normalizeTime(string(v)))
	case time.Time:
		*ts = NewTimeString(v)
	case nil:
		*ts = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
	return ts.Validate()
}

func normalizeTime(s string) string {
	if len(s) > len(timeStringLayout) {
		return s[:len(timeStringLayout)]
	}
	return s
}
