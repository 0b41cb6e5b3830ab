package create_reservation

import (
	"context"
	"fmt"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// UseCase use case для создания бронирования (одиночного и recurring)
type UseCase struct {
	planner         Planner
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	planner Planner,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		planner:         planner,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Планирование (чтение конфликтов) и вставка всех слотов серии выполняются
// внутри одной сериализуемой транзакции: либо записывается вся серия,
// либо ничего. Без транзакции два конкурентных запроса могли бы оба пройти
// проверку конфликтов и оба записаться (check-then-act гонка)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, room=%d, start=%s, type=%s, weeks=%d",
		req.ActorID, req.RoomID, req.StartTime.Format(domain.DateFormat), req.Type, req.RecurringWeeks)

	var created []*domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Проверка конфликтов внутри транзакции берет блокировку строк
		// (FOR UPDATE) на пересекающихся бронированиях
		plan, err := uc.planner.Plan(txCtx, req.ToPlannerRequest())
		if err != nil {
			return err
		}

		created = make([]*domain.Reservation, 0, len(plan.Reservations))
		for i := range plan.Reservations {
			res, err := uc.reservationRepo.Create(txCtx, &plan.Reservations[i])
			if err != nil {
				uc.logger.Error("CreateReservation: failed to create reservation %d/%d: %v",
					i+1, len(plan.Reservations), err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}
			created = append(created, res)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created %d reservation(s) for user=%d, room=%d",
		len(created), req.ActorID, req.RoomID)

	return &Response{Reservations: created}, nil
}
