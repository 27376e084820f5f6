package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangeDays(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		days, err := RangeDays(date(2026, time.September, 7), date(2026, time.September, 7))
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, date(2026, time.September, 7), days[0])
	})

	t.Run("two weeks inclusive", func(t *testing.T) {
		days, err := RangeDays(date(2026, time.September, 7), date(2026, time.September, 20))
		require.NoError(t, err)
		assert.Len(t, days, 14)
		assert.Equal(t, date(2026, time.September, 7), days[0])
		assert.Equal(t, date(2026, time.September, 20), days[len(days)-1])
	})

	t.Run("days are consecutive and ascending", func(t *testing.T) {
		days, err := RangeDays(date(2026, time.February, 26), date(2026, time.March, 3))
		require.NoError(t, err)
		require.Len(t, days, 6)
		for i := 1; i < len(days); i++ {
			assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
		}
	})

	t.Run("time of day is truncated", func(t *testing.T) {
		start := time.Date(2026, time.September, 7, 15, 30, 45, 0, time.UTC)
		end := time.Date(2026, time.September, 8, 2, 0, 0, 0, time.UTC)

		days, err := RangeDays(start, end)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, date(2026, time.September, 7), days[0])
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := RangeDays(date(2026, time.September, 20), date(2026, time.September, 7))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("cross-year range rejected", func(t *testing.T) {
		_, err := RangeDays(date(2026, time.December, 28), date(2027, time.January, 3))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("zero dates rejected", func(t *testing.T) {
		_, err := RangeDays(time.Time{}, date(2026, time.September, 7))
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = RangeDays(date(2026, time.September, 7), time.Time{})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestWeekdayMap(t *testing.T) {
	t.Run("always contains all seven keys", func(t *testing.T) {
		m := WeekdayMap(nil)
		require.Len(t, m, 7)
		for wd := Monday; wd <= Sunday; wd++ {
			_, ok := m[wd]
			assert.True(t, ok, "weekday %d missing", wd)
		}
	})

	t.Run("groups days by weekday", func(t *testing.T) {
		// 2026-09-07 понедельник
		days, err := RangeDays(date(2026, time.September, 7), date(2026, time.September, 20))
		require.NoError(t, err)

		m := WeekdayMap(days)
		require.Len(t, m, 7)

		total := 0
		for wd := Monday; wd <= Sunday; wd++ {
			assert.Len(t, m[wd], 2, "weekday %d", wd)
			total += len(m[wd])
		}
		assert.Equal(t, len(days), total)

		assert.Equal(t, date(2026, time.September, 7), m[Monday][0])
		assert.Equal(t, date(2026, time.September, 14), m[Monday][1])
		assert.Equal(t, date(2026, time.September, 13), m[Sunday][0])
	})

	t.Run("monday is zero", func(t *testing.T) {
		m := WeekdayMap([]time.Time{date(2026, time.September, 7)})
		require.Len(t, m[Monday], 1)
		assert.Empty(t, m[Sunday])
	})
}

func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		day  time.Time
		want int
	}{
		{date(2026, time.September, 7), Monday},
		{date(2026, time.September, 8), Tuesday},
		{date(2026, time.September, 12), Saturday},
		{date(2026, time.September, 13), Sunday},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, WeekdayOf(tc.day), "day %s", tc.day.Format("2006-01-02"))
	}
}
