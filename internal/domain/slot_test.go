package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalsOverlap(t *testing.T) {
	base := time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)
	hour := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	tests := []struct {
		name           string
		a0, a1, b0, b1 time.Time
		want           bool
	}{
		{"identical intervals", hour(0), hour(2), hour(0), hour(2), true},
		{"partial overlap", hour(0), hour(2), hour(1), hour(3), true},
		{"containment", hour(0), hour(4), hour(1), hour(2), true},
		{"touching end to start", hour(0), hour(2), hour(2), hour(4), false},
		{"touching start to end", hour(2), hour(4), hour(0), hour(2), false},
		{"disjoint", hour(0), hour(1), hour(2), hour(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalsOverlap(tt.a0, tt.a1, tt.b0, tt.b1))
			// Пересечение симметрично
			assert.Equal(t, tt.want, IntervalsOverlap(tt.b0, tt.b1, tt.a0, tt.a1))
		})
	}
}

func TestRoomRemainingCapacity(t *testing.T) {
	room := &Room{Capacity: 4}

	assert.Equal(t, 4, room.RemainingCapacity(0))
	assert.Equal(t, 1, room.RemainingCapacity(3))
	// Переполнение не уходит в минус
	assert.Equal(t, 0, room.RemainingCapacity(7))
}

func TestReservationOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)
	res := &Reservation{StartTime: base, EndTime: base.Add(2 * time.Hour)}

	assert.True(t, res.Overlaps(base.Add(time.Hour), base.Add(3*time.Hour)))
	assert.False(t, res.Overlaps(base.Add(2*time.Hour), base.Add(3*time.Hour)))
}
