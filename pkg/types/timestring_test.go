package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
		assert.Equal(t, 9, ts.Hour())
		assert.Equal(t, 30, ts.Minute())
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, s := range []string{"25:00", "09:60", "9:30:00", "morning", ""} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
		}
	})
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		ts := TimeString("09:30")

		got, err := ts.AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:15"), got)
	})

	t.Run("overflow past midnight", func(t *testing.T) {
		ts := TimeString("23:45")

		_, err := ts.AddMinutes(30)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})

	t.Run("negative result", func(t *testing.T) {
		ts := TimeString("00:10")

		_, err := ts.AddMinutes(-30)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestTimeStringComparisons(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("17:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.Equal(t, 510, early.MinutesUntil(late))
	assert.Equal(t, -510, late.MinutesUntil(early))
}

func TestTimeStringOnDate(t *testing.T) {
	t.Run("combines date and clock in location", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Moscow")
		require.NoError(t, err)

		day := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
		got := TimeString("09:30").OnDate(day, loc)

		assert.Equal(t, time.Date(2026, time.September, 7, 9, 30, 0, 0, loc), got)
	})

	t.Run("resolves DST transition day", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)

		// 2026-03-29: переход на летнее время в Берлине
		day := time.Date(2026, time.March, 29, 0, 0, 0, 0, time.UTC)
		morning := TimeString("09:00").OnDate(day, loc)
		evening := TimeString("17:00").OnDate(day, loc)

		// Из-за пропавшего часа интервал между 09:00 и 17:00 остается 8 часов
		// по стенным часам, но точки привязаны к валидным зонным смещениям
		assert.Equal(t, 9, morning.Hour())
		assert.Equal(t, 17, evening.Hour())
		assert.True(t, morning.Before(evening))
	})
}

func TestTimeStringScan(t *testing.T) {
	t.Run("string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:30:00"))
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("17:45")))
		assert.Equal(t, TimeString("17:45"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
