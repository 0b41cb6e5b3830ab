package reservations

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
