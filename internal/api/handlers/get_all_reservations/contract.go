package get_all_reservations

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

type ReservationService interface {
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
