package update_reservation

import (
	"context"

	updateReservation "github.com/bandhall/BRS-ReservationService/internal/usecase/update_reservation"
)

type UpdateReservationUseCase interface {
	Execute(ctx context.Context, req *updateReservation.Request) (*updateReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
