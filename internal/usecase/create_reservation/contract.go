package create_reservation

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
)

// Planner интерфейс планировщика бронирований
type Planner interface {
	Plan(ctx context.Context, req *planner.Request) (*planner.Plan, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
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
