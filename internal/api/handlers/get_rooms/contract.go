package get_rooms

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

type RoomService interface {
	List(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
