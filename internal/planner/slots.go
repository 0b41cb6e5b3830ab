package planner

import (
	"fmt"
	"time"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if !req.ActorRole.Valid() {
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.ActorRole)
	}

	if req.Type != domain.TypeExclusive && req.Type != domain.TypeShared {
		return fmt.Errorf("%w: unknown reservation type %q", ErrInvalidInput, req.Type)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return ErrInvalidTimeRange
	}

	if req.RecurringWeeks > domain.MaxRecurringWeeks {
		return fmt.Errorf("%w: recurringWeeks must not exceed %d", ErrInvalidInput, domain.MaxRecurringWeeks)
	}

	return nil
}

// validatePolicy проверяет политику бронирования по первому слоту серии.
// Запрет прошлого действует для всех, горизонт и ограничение длительности -
// только для обычных пользователей
func validatePolicy(req *Request, now time.Time) error {
	if req.StartTime.Before(now) {
		return ErrPastBooking
	}

	if req.ActorRole.IsAdmin() {
		return nil
	}

	// Горизонт считается календарно (через AddDate), а не как 7*24 часа,
	// чтобы переход на летнее время не сдвигал границу
	horizon := now.AddDate(0, 0, domain.BookingHorizonDays)
	if req.StartTime.After(horizon) {
		return fmt.Errorf("%w: regular users can only book up to %d days in advance",
			ErrHorizonExceeded, domain.BookingHorizonDays)
	}

	if req.EndTime.Sub(req.StartTime) > domain.MaxReservationDuration {
		return fmt.Errorf("%w: maximum reservation duration is %s",
			ErrDurationExceeded, domain.MaxReservationDuration)
	}

	return nil
}

// expandSlots раскрывает базовый слот в серию из weeks слотов с шагом в неделю.
// Сдвиг делается календарно (AddDate), а не прибавлением 7*24 часов:
// слот сохраняет настенное время начала и длительность при переходе
// на летнее/зимнее время и через границы месяцев
func expandSlots(start, end time.Time, weeks int) []domain.Slot {
	slots := make([]domain.Slot, weeks)
	for i := 0; i < weeks; i++ {
		slots[i] = domain.Slot{
			Start: start.AddDate(0, 0, i*domain.RecurringStep),
			End:   end.AddDate(0, 0, i*domain.RecurringStep),
		}
	}
	return slots
}

// countParticipants суммирует количество участников shared бронирований.
// Exclusive бронирования в сумму не входят - они несовместимы с shared
// и отсекаются раньше
func countParticipants(reservations []*domain.Reservation) int {
	sum := 0
	for _, r := range reservations {
		if !r.IsShared() {
			continue
		}
		count := r.ParticipantCount
		if count < domain.MinParticipantCount {
			count = domain.MinParticipantCount
		}
		sum += count
	}
	return sum
}
