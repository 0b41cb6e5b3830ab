package create_reservation

import (
	"time"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
)

// Request модель запроса на создание бронирования
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
	Type             domain.ReservationType
	ParticipantCount int
	RecurringWeeks   int
}

// ToPlannerRequest конвертирует запрос в модель планировщика
func (r *Request) ToPlannerRequest() *planner.Request {
	return &planner.Request{
		RoomID:           r.RoomID,
		ActorID:          r.ActorID,
		ActorRole:        r.ActorRole,
		BandID:           r.BandID,
		BandName:         r.BandName,
		ContactInfo:      r.ContactInfo,
		Purpose:          r.Purpose,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Type:             r.Type,
		ParticipantCount: r.ParticipantCount,
		RecurringWeeks:   r.RecurringWeeks,
	}
}

// Response модель ответа с созданными бронированиями
// Recurring запрос создает несколько записей - по одной на слот серии
type Response struct {
	Reservations []*domain.Reservation
}
