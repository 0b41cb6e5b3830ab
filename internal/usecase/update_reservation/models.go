package update_reservation

import (
	"time"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// Request модель запроса на редактирование бронирования.
// Nil-поля не изменяются - их значения берутся из существующей записи.
// StartTime и EndTime указываются только парой
type Request struct {
	ReservationID    int64
	ActorID          int64
	ActorRole        domain.Role
	BandName         *string
	ContactInfo      *string
	Purpose          *string
	StartTime        *time.Time
	EndTime          *time.Time
	Type             *domain.ReservationType
	ParticipantCount *int
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Reservation *domain.Reservation
}
