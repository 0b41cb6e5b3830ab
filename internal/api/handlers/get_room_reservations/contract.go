package get_room_reservations

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

type ReservationService interface {
	GetRoomReservations(ctx context.Context, roomID int64) ([]*domain.Reservation, error)
}

type RoomService interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
