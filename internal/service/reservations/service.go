package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	reservationRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/reservation"
)

// Service сервис для чтения, отмены и удаления бронирований.
// Создание и редактирование идут через usecases с планировщиком -
// здесь только операции, не требующие проверки конфликтов
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, админ - любые
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64, actorRole domain.Role) (*domain.Reservation, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, actorID)

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actorRole.IsAdmin() && res.UserID != actorID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", actorID, id)
		return nil, ErrAccessDenied
	}

	return res, nil
}

// GetUserReservations получает бронирования пользователя, сначала новые
func (s *Service) GetUserReservations(ctx context.Context, userID int64, includeCancelled bool) ([]*domain.Reservation, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d", userID)

	filter := domain.ReservationFilter{
		UserID:           &userID,
		IncludeCancelled: includeCancelled,
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservation(s) for user=%d", len(reservations), userID)
	return reservations, nil
}

// GetRoomReservations получает confirmed бронирования комнаты
// Используется для отображения расписания комнаты
func (s *Service) GetRoomReservations(ctx context.Context, roomID int64) ([]*domain.Reservation, error) {
	s.logger.Info("GetRoomReservations: fetching reservations for room=%d", roomID)

	filter := domain.ReservationFilter{
		RoomID: &roomID,
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomReservations: repository error for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomReservations - repository error: %v", ErrInternal, err)
	}

	return reservations, nil
}

// GetAll получает все бронирования, включая отмененные (админская выборка)
func (s *Service) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	s.logger.Info("GetAll: fetching all reservations")

	reservations, err := s.reservationRepo.GetWithFilter(ctx, domain.ReservationFilter{IncludeCancelled: true})
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d reservation(s)", len(reservations))
	return reservations, nil
}

// Cancel отменяет бронирование (мягкое удаление, запись сохраняется).
// Пользователь отменяет только свои бронирования, админ - любые
func (s *Service) Cancel(ctx context.Context, id int64, actorID int64, actorRole domain.Role) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, actorID)

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if !actorRole.IsAdmin() && res.UserID != actorID {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", actorID, id)
		return ErrAccessDenied
	}

	if res.Status == domain.StatusCancelled {
		s.logger.Warn("Cancel: reservation id=%d is already cancelled", id)
		return ErrAlreadyCancelled
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// Delete удаляет бронирование физически
// Пользователь удаляет только свои бронирования, админ - любые
func (s *Service) Delete(ctx context.Context, id int64, actorID int64, actorRole domain.Role) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", id, actorID)

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if !actorRole.IsAdmin() && res.UserID != actorID {
		s.logger.Warn("Delete: access denied for user=%d to reservation id=%d", actorID, id)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// getReservation получает бронирование, конвертируя ошибки репозитория
func (s *Service) getReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("getReservation: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("getReservation: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getReservation - repository error: %v", ErrInternal, err)
	}
	return res, nil
}
