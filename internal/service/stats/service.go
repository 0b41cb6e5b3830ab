package stats

import (
	"context"
	"errors"
	"fmt"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("stats: internal error")

// Summary сводные счетчики для админской панели
type Summary struct {
	RoomCount              int64
	ReservationCount       int64
	ActiveReservationCount int64
}

// Service сервис сводной статистики
type Service struct {
	reservations ReservationCounter
	rooms        RoomCounter
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(reservations ReservationCounter, rooms RoomCounter, logger Logger) *Service {
	return &Service{
		reservations: reservations,
		rooms:        rooms,
		logger:       logger,
	}
}

// GetSummary собирает сводные счетчики
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	roomCount, err := s.rooms.Count(ctx)
	if err != nil {
		s.logger.Error("GetSummary: failed to count rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to count rooms: %v", ErrInternal, err)
	}

	reservationCount, err := s.reservations.Count(ctx)
	if err != nil {
		s.logger.Error("GetSummary: failed to count reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to count reservations: %v", ErrInternal, err)
	}

	activeCount, err := s.reservations.CountActive(ctx)
	if err != nil {
		s.logger.Error("GetSummary: failed to count active reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
	}

	return &Summary{
		RoomCount:              roomCount,
		ReservationCount:       reservationCount,
		ActiveReservationCount: activeCount,
	}, nil
}
