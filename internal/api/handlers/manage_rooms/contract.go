package manage_rooms

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

type RoomService interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	SetAvailability(ctx context.Context, id int64, isAvailable bool) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
