package update_reservation

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
)

// Planner интерфейс планировщика бронирований
type Planner interface {
	PlanEdit(ctx context.Context, req *planner.EditRequest) (*domain.Reservation, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
