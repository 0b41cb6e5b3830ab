package create_reservation

import (
	"time"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/domain"
	createReservation "github.com/bandhall/BRS-ReservationService/internal/usecase/create_reservation"
	"github.com/bandhall/BRS-ReservationService/pkg/ptr"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID           int64   `json:"roomId"`
	BandID           *int64  `json:"bandId,omitempty"`
	BandName         string  `json:"bandName"`
	ContactInfo      *string `json:"contactInfo,omitempty"`
	Purpose          *string `json:"purpose,omitempty"`
	StartTime        string  `json:"startTime"` // RFC3339
	EndTime          string  `json:"endTime"`   // RFC3339
	Type             *string `json:"type,omitempty"`
	ParticipantCount *int    `json:"participantCount,omitempty"`
	RecurringWeeks   *int    `json:"recurringWeeks,omitempty"`
}

// CreateReservationResponse HTTP response model
// Recurring запрос возвращает по одной записи на каждый слот серии
type CreateReservationResponse struct {
	Reservations []*handlers.ReservationResponse `json:"reservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *CreateReservationRequest) ToUseCaseRequest(actorID int64, actorRole domain.Role) (*createReservation.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	resType := domain.ReservationType(ptr.Deref(r.Type, string(domain.TypeExclusive)))

	return &createReservation.Request{
		RoomID:           r.RoomID,
		ActorID:          actorID,
		ActorRole:        actorRole,
		BandID:           r.BandID,
		BandName:         r.BandName,
		ContactInfo:      r.ContactInfo,
		Purpose:          r.Purpose,
		StartTime:        startTime,
		EndTime:          endTime,
		Type:             resType,
		ParticipantCount: ptr.Deref(r.ParticipantCount, domain.MinParticipantCount),
		RecurringWeeks:   ptr.Deref(r.RecurringWeeks, 1),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservations: handlers.FromDomainReservations(resp.Reservations),
	}
}
