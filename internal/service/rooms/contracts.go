package rooms

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	SetAvailability(ctx context.Context, id int64, isAvailable bool) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
