package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	roomRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/room"
)

// Service сервис для работы с комнатами
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List получает все комнаты, отсортированные по имени
func (s *Service) List(ctx context.Context) ([]*domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return rooms, nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return room, nil
}

// Create создает новую комнату (админская операция)
func (s *Service) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	s.logger.Info("Create: creating room name=%q, capacity=%d", room.Name, room.Capacity)

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return created, nil
}

// Update обновляет данные комнаты (админская операция)
func (s *Service) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	s.logger.Info("Update: updating room id=%d", room.ID)

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", room.ID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return room, nil
}

// SetAvailability переключает режим обслуживания комнаты (админская операция).
// Недоступная комната не принимает новые бронирования, существующие
// бронирования не затрагиваются
func (s *Service) SetAvailability(ctx context.Context, id int64, isAvailable bool) error {
	s.logger.Info("SetAvailability: room id=%d, available=%t", id, isAvailable)

	if err := s.roomRepo.SetAvailability(ctx, id, isAvailable); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("SetAvailability: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("SetAvailability: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete удаляет комнату (админская операция)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting room id=%d", id)

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// validateRoom валидирует данные комнаты
func validateRoom(room *domain.Room) error {
	if strings.TrimSpace(room.Name) == "" {
		return fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}
	if room.Capacity < 1 {
		return ErrInvalidCapacity
	}
	return nil
}
