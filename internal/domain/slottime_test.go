package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func slotBetween(startMin, endMin int) *SlotTime {
	base := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	return &SlotTime{
		StartTime: base.Add(time.Duration(startMin) * time.Minute),
		EndTime:   base.Add(time.Duration(endMin) * time.Minute),
	}
}

func TestSlotTimeOverlaps(t *testing.T) {
	existing := slotBetween(0, 30)

	tests := []struct {
		name     string
		other    *SlotTime
		overlaps bool
	}{
		{"identical interval", slotBetween(0, 30), true},
		{"start inside existing", slotBetween(15, 45), true},
		{"end inside existing", slotBetween(-15, 15), true},
		{"candidate contains existing", slotBetween(-15, 45), true},
		{"existing contains candidate", slotBetween(10, 20), true},
		{"touching at existing end", slotBetween(30, 60), false},
		{"touching at existing start", slotBetween(-30, 0), false},
		{"disjoint after", slotBetween(60, 90), false},
		{"disjoint before", slotBetween(-60, -30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, existing.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(existing))
		})
	}
}

func TestSlotTimeDurationMinutes(t *testing.T) {
	assert.Equal(t, 30, slotBetween(0, 30).DurationMinutes())
	assert.Equal(t, 90, slotBetween(-30, 60).DurationMinutes())
}
