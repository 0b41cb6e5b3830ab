package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	reservationRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/reservation"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
)

// UseCase use case для редактирования бронирования
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

// Execute выполняет use case редактирования бронирования.
// Чтение текущей записи, перепроверка конфликтов и запись выполняются
// внутри одной сериализуемой транзакции: перепроверка идет по живому
// набору бронирований, а не по устаревшему снимку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, user=%d", req.ReservationID, req.ActorID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// Редактировать может владелец или админ
		if !req.ActorRole.IsAdmin() && existing.UserID != req.ActorID {
			uc.logger.Warn("UpdateReservation: access denied for user=%d to reservation id=%d",
				req.ActorID, req.ReservationID)
			return ErrAccessDenied
		}

		candidate := mergeRequest(existing, req)

		// Перепроверка той же логикой, что и создание; редактируемое
		// бронирование исключается из собственного набора конфликтов
		validated, err := uc.planner.PlanEdit(txCtx, &planner.EditRequest{
			Candidate: candidate,
			ActorRole: req.ActorRole,
		})
		if err != nil {
			return err
		}

		if err := uc.reservationRepo.Update(txCtx, validated); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		updated = validated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", req.ReservationID)
	return &Response{Reservation: updated}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	// Время меняется только парой - сдвиг одной границы без другой
	// почти всегда ошибка клиента
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be provided together", ErrInvalidInput)
	}

	return nil
}

// mergeRequest накладывает указанные поля запроса на существующую запись
func mergeRequest(existing *domain.Reservation, req *Request) *domain.Reservation {
	candidate := *existing

	if req.BandName != nil {
		candidate.BandName = *req.BandName
	}
	if req.ContactInfo != nil {
		candidate.ContactInfo = req.ContactInfo
	}
	if req.Purpose != nil {
		candidate.Purpose = req.Purpose
	}
	if req.Type != nil {
		candidate.Type = *req.Type
	}
	if req.ParticipantCount != nil {
		candidate.ParticipantCount = *req.ParticipantCount
	}
	if req.StartTime != nil && req.EndTime != nil {
		candidate.StartTime = *req.StartTime
		candidate.EndTime = *req.EndTime
	}

	return &candidate
}
