package handlers

import (
	"time"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// ReservationResponse HTTP модель бронирования, общая для всех эндпоинтов
type ReservationResponse struct {
	ID               int64   `json:"id"`
	RoomID           int64   `json:"roomId"`
	UserID           int64   `json:"userId"`
	BandID           *int64  `json:"bandId,omitempty"`
	BandName         string  `json:"bandName"`
	ContactInfo      *string `json:"contactInfo,omitempty"`
	Purpose          *string `json:"purpose,omitempty"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	Status           string  `json:"status"`
	Type             string  `json:"type"`
	ParticipantCount int     `json:"participantCount"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// RoomResponse HTTP модель комнаты
type RoomResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Equipment   []string `json:"equipment"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	IsAvailable bool     `json:"isAvailable"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// FromDomainReservation конвертирует доменную модель в HTTP ответ
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:               res.ID,
		RoomID:           res.RoomID,
		UserID:           res.UserID,
		BandID:           res.BandID,
		BandName:         res.BandName,
		ContactInfo:      res.ContactInfo,
		Purpose:          res.Purpose,
		StartTime:        res.StartTime.Format(time.RFC3339),
		EndTime:          res.EndTime.Format(time.RFC3339),
		Status:           string(res.Status),
		Type:             string(res.Type),
		ParticipantCount: res.ParticipantCount,
		CreatedAt:        res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        res.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservations конвертирует список доменных моделей в HTTP ответ
func FromDomainReservations(list []*domain.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, res := range list {
		out = append(out, FromDomainReservation(res))
	}
	return out
}

// FromDomainRoom конвертирует доменную модель комнаты в HTTP ответ
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Capacity:    room.Capacity,
		Equipment:   room.Equipment,
		ImageURL:    room.ImageURL,
		IsAvailable: room.IsAvailable,
		CreatedAt:   room.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   room.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainRooms конвертирует список комнат в HTTP ответ
func FromDomainRooms(list []*domain.Room) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(list))
	for _, room := range list {
		out = append(out, FromDomainRoom(room))
	}
	return out
}
