package planner

import (
	"time"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// Request запрос на планирование бронирования (создание)
type Request struct {
	RoomID           int64
	ActorID          int64       // ID пользователя, выполняющего бронирование
	ActorRole        domain.Role // Роль определяет горизонт и длительность
	BandID           *int64
	BandName         string
	ContactInfo      *string
	Purpose          *string
	StartTime        time.Time
	EndTime          time.Time
	Type             domain.ReservationType // По умолчанию exclusive
	ParticipantCount int                    // По умолчанию 1, имеет смысл для shared

	// RecurringWeeks длина еженедельной серии. Учитывается только для админов,
	// для обычных пользователей молча приводится к 1
	RecurringWeeks int
}

// normalize подставляет значения по умолчанию
func (r *Request) normalize() {
	if r.Type == "" {
		r.Type = domain.TypeExclusive
	}
	if r.ParticipantCount < domain.MinParticipantCount {
		r.ParticipantCount = domain.MinParticipantCount
	}
	if r.RecurringWeeks < 1 {
		r.RecurringWeeks = 1
	}
}

// EditRequest запрос на перепроверку отредактированного бронирования.
// Candidate - существующее бронирование с уже применёнными изменениями
// (неуказанные поля caller заполняет из текущей записи)
type EditRequest struct {
	Candidate *domain.Reservation
	ActorRole domain.Role
}

// Plan результат успешного планирования: готовые к вставке записи.
// Планировщик сам ничего не пишет - caller сохраняет все записи атомарно
type Plan struct {
	Room         *domain.Room
	Reservations []domain.Reservation // По одной записи на слот, в порядке серии
}
