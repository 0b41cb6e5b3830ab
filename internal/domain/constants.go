package domain

import "time"

// Booking policy constants
const (
	// BookingHorizonDays максимальное количество дней вперед, на которое
	// обычный пользователь может бронировать комнату (админы без ограничений)
	BookingHorizonDays = 7

	// MaxReservationDuration максимальная длительность одного бронирования
	// для обычного пользователя (админы без ограничений)
	MaxReservationDuration = 5 * time.Hour

	// RecurringStep шаг повторяющегося бронирования
	RecurringStep = 7 // дней между слотами серии

	// MinParticipantCount минимальное количество участников shared бронирования
	MinParticipantCount = 1

	// MaxRecurringWeeks верхняя граница длины серии
	MaxRecurringWeeks = 52
)

// Role роль пользователя, от которой зависят ограничения бронирования
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsAdmin returns true for the admin role
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Valid returns true if the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
