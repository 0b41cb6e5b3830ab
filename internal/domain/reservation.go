package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ReservationType represents how a reservation occupies the room
type ReservationType string

const (
	// TypeExclusive бронирование занимает всю комнату целиком
	TypeExclusive ReservationType = "exclusive"
	// TypeShared бронирование занимает часть вместимости комнаты,
	// допускает соседство с другими shared бронированиями
	TypeShared ReservationType = "shared"
)

// Reservation represents a room reservation
type Reservation struct {
	ID          int64
	RoomID      int64
	UserID      int64
	BandID      *int64 // Бронирование от имени группы (опционально)
	BandName    string
	ContactInfo *string
	Purpose     *string
	StartTime   time.Time
	EndTime     time.Time
	Status      ReservationStatus
	Type        ReservationType

	// ParticipantCount количество участников, имеет смысл только для shared.
	// Exclusive бронирование занимает всю вместимость независимо от этого поля
	ParticipantCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the reservation participates in conflict checks
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// IsExclusive returns true for reservations that occupy the whole room
func (r *Reservation) IsExclusive() bool {
	return r.Type == TypeExclusive
}

// IsShared returns true for reservations that occupy part of the capacity
func (r *Reservation) IsShared() bool {
	return r.Type == TypeShared
}

// Duration returns the reservation duration
func (r *Reservation) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Overlaps reports whether the reservation interval overlaps [start, end).
// Интервалы полуоткрытые: соприкосновение границ пересечением НЕ считается
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(r.StartTime, r.EndTime, start, end)
}

// ReservationFilter фильтр для выборки бронирований
type ReservationFilter struct {
	RoomID           *int64
	UserID           *int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *ReservationStatus
	IncludeCancelled bool
}
