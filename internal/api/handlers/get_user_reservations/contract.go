package get_user_reservations

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

type ReservationService interface {
	GetUserReservations(ctx context.Context, userID int64, includeCancelled bool) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
