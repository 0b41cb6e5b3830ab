package domain

import "time"

// Room represents a rehearsal room
type Room struct {
	ID        int64
	Name      string
	Capacity  int // Вместимость комнаты (количество музыкантов)
	Equipment []string
	ImageURL  *string

	// IsAvailable флаг доступности комнаты (false = комната на обслуживании,
	// новые бронирования не принимаются)
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanAcceptBookings returns true if the room accepts new reservations
func (r *Room) CanAcceptBookings() bool {
	return r.IsAvailable
}

// RemainingCapacity returns how many participants still fit given the
// number already occupying the room
func (r *Room) RemainingCapacity(occupied int) int {
	remaining := r.Capacity - occupied
	if remaining < 0 {
		return 0
	}
	return remaining
}
