package cancel_reservation

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

type ReservationService interface {
	Cancel(ctx context.Context, id int64, actorID int64, actorRole domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
