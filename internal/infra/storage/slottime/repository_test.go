package slottime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Предикат пересечения должен быть симметричным и не считать касание
// границ пересечением: проверяем SQL, который реально уходит в базу.
func TestOverlapCondSQL(t *testing.T) {
	start := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 7, 9, 30, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("slot_times").
		Where(overlapCond(42, start, end)).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT COUNT(*) FROM slot_times WHERE (booking_type_id = $1 AND start_time < $2 AND end_time > $3)",
		query)
	assert.Equal(t, []interface{}{int64(42), end, start}, args)
}
