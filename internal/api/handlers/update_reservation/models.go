package update_reservation

import (
	"time"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/domain"
	updateReservation "github.com/bandhall/BRS-ReservationService/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model.
// Незаполненные поля не изменяются
type UpdateReservationRequest struct {
	BandName         *string `json:"bandName,omitempty"`
	ContactInfo      *string `json:"contactInfo,omitempty"`
	Purpose          *string `json:"purpose,omitempty"`
	StartTime        *string `json:"startTime,omitempty"` // RFC3339
	EndTime          *string `json:"endTime,omitempty"`   // RFC3339
	Type             *string `json:"type,omitempty"`
	ParticipantCount *int    `json:"participantCount,omitempty"`
}

// UpdateReservationResponse HTTP response model
type UpdateReservationResponse struct {
	Reservation *handlers.ReservationResponse `json:"reservation"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID, actorID int64, actorRole domain.Role) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ReservationID:    reservationID,
		ActorID:          actorID,
		ActorRole:        actorRole,
		BandName:         r.BandName,
		ContactInfo:      r.ContactInfo,
		Purpose:          r.Purpose,
		ParticipantCount: r.ParticipantCount,
	}

	if r.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	if r.Type != nil {
		resType := domain.ReservationType(*r.Type)
		req.Type = &resType
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *UpdateReservationResponse {
	return &UpdateReservationResponse{
		Reservation: handlers.FromDomainReservation(resp.Reservation),
	}
}
