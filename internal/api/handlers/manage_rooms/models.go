package manage_rooms

import (
	"github.com/bandhall/BRS-ReservationService/internal/domain"
	"github.com/bandhall/BRS-ReservationService/pkg/ptr"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Equipment   []string `json:"equipment,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// UpdateRoomRequest HTTP request model.
// Незаполненные поля не изменяются
type UpdateRoomRequest struct {
	Name        *string  `json:"name,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

// ToDomainRoom конвертирует запрос на создание в доменную модель
func (r *CreateRoomRequest) ToDomainRoom() *domain.Room {
	equipment := r.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return &domain.Room{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Equipment:   equipment,
		ImageURL:    r.ImageURL,
		IsAvailable: ptr.Deref(r.IsAvailable, true),
	}
}

// ApplyTo накладывает заполненные поля запроса на существующую комнату
func (r *UpdateRoomRequest) ApplyTo(room *domain.Room) {
	if r.Name != nil {
		room.Name = *r.Name
	}
	if r.Capacity != nil {
		room.Capacity = *r.Capacity
	}
	if r.Equipment != nil {
		room.Equipment = r.Equipment
	}
	if r.ImageURL != nil {
		room.ImageURL = r.ImageURL
	}
	if r.IsAvailable != nil {
		room.IsAvailable = *r.IsAvailable
	}
}
