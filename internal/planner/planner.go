package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	roomRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/room"
)

// Planner проверяет допустимость бронирования и собирает план записи.
// Единственная точка, где живет логика конфликтов, вместимости и политики
// горизонта - пути создания, recurring-создания и редактирования проходят
// через нее. Планировщик владеет только чтением: findRoom и findOverlapping
// инжектируются, записи выполняет caller внутри транзакции
type Planner struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewPlanner создает новый экземпляр планировщика
func NewPlanner(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Planner {
	return &Planner{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Plan проверяет запрос на бронирование и возвращает готовые к вставке записи.
// Для recurring запроса проверяются ВСЕ слоты серии до какой-либо записи:
// отказ по любому слоту отменяет всю серию, частичная серия не создается
func (p *Planner) Plan(ctx context.Context, req *Request) (*Plan, error) {
	req.normalize()

	if err := validateRequest(req); err != nil {
		p.logger.Warn("Plan: validation failed: %v", err)
		return nil, err
	}

	now := p.timeProvider.Now()

	// Политика проверяется один раз по первому слоту, до раскрытия серии
	if err := validatePolicy(req, now); err != nil {
		p.logger.Warn("Plan: policy check failed for user=%d, room=%d: %v", req.ActorID, req.RoomID, err)
		return nil, err
	}

	// RecurringWeeks > 1 учитывается только для админов, для остальных
	// серия молча приводится к одному слоту
	weeks := 1
	if req.ActorRole.IsAdmin() && req.RecurringWeeks > 1 {
		weeks = req.RecurringWeeks
	}

	// Комната проверяется один раз на запрос, не по каждому слоту
	room, err := p.findRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.CanAcceptBookings() {
		p.logger.Warn("Plan: room id=%d is unavailable (maintenance)", room.ID)
		return nil, ErrRoomUnavailable
	}

	slots := expandSlots(req.StartTime, req.EndTime, weeks)

	// Проверяем допустимость КАЖДОГО слота до какой-либо записи
	for i, slot := range slots {
		if err := p.checkSlot(ctx, room, slot, req.Type, req.ParticipantCount, nil, weeks > 1); err != nil {
			if weeks > 1 {
				p.logger.Warn("Plan: slot %d/%d (%s) rejected, recurring series aborted: %v",
					i+1, weeks, slot.Start.Format(domain.DateFormat), err)
			}
			return nil, err
		}
	}

	// Все слоты допустимы - собираем записи для атомарной вставки
	reservations := make([]domain.Reservation, len(slots))
	for i, slot := range slots {
		reservations[i] = domain.Reservation{
			RoomID:           req.RoomID,
			UserID:           req.ActorID,
			BandID:           req.BandID,
			BandName:         req.BandName,
			ContactInfo:      req.ContactInfo,
			Purpose:          req.Purpose,
			StartTime:        slot.Start,
			EndTime:          slot.End,
			Status:           domain.StatusConfirmed,
			Type:             req.Type,
			ParticipantCount: req.ParticipantCount,
		}
	}

	p.logger.Info("Plan: accepted %d slot(s) for user=%d, room=%d, type=%s",
		len(reservations), req.ActorID, req.RoomID, req.Type)

	return &Plan{Room: room, Reservations: reservations}, nil
}

// PlanEdit перепроверяет отредактированное бронирование той же логикой,
// что и создание, исключая бронирование из его собственного набора конфликтов.
// Горизонт и запрет прошлого на редактирование не распространяются,
// ограничение длительности для обычных пользователей действует
func (p *Planner) PlanEdit(ctx context.Context, req *EditRequest) (*domain.Reservation, error) {
	c := req.Candidate
	if c == nil || c.ID <= 0 {
		return nil, fmt.Errorf("%w: candidate reservation is required", ErrInvalidInput)
	}

	if !c.EndTime.After(c.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if c.ParticipantCount < domain.MinParticipantCount {
		return nil, fmt.Errorf("%w: participantCount must be at least %d", ErrInvalidInput, domain.MinParticipantCount)
	}
	if !req.ActorRole.IsAdmin() && c.Duration() > domain.MaxReservationDuration {
		p.logger.Warn("PlanEdit: duration %s exceeds limit for reservation id=%d", c.Duration(), c.ID)
		return nil, ErrDurationExceeded
	}

	room, err := p.findRoom(ctx, c.RoomID)
	if err != nil {
		return nil, err
	}

	slot := domain.Slot{Start: c.StartTime, End: c.EndTime}
	if err := p.checkSlot(ctx, room, slot, c.Type, c.ParticipantCount, &c.ID, false); err != nil {
		return nil, err
	}

	p.logger.Info("PlanEdit: accepted edit of reservation id=%d, room=%d, type=%s", c.ID, c.RoomID, c.Type)
	return c, nil
}

// findRoom получает комнату, конвертируя ошибки хранилища в ошибки планировщика
func (p *Planner) findRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := p.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			p.logger.Warn("Plan: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		p.logger.Error("Plan: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrStorage, err)
	}
	return room, nil
}

// checkSlot проверяет один слот на конфликты и вместимость.
// excludeID исключает редактируемое бронирование из набора конфликтов
func (p *Planner) checkSlot(
	ctx context.Context,
	room *domain.Room,
	slot domain.Slot,
	reqType domain.ReservationType,
	participantCount int,
	excludeID *int64,
	recurring bool,
) error {
	overlapping, err := p.reservationRepo.GetOverlapping(ctx, room.ID, slot.Start, slot.End, excludeID)
	if err != nil {
		p.logger.Error("Plan: failed to get overlapping reservations for room=%d: %v", room.ID, err)
		return fmt.Errorf("%w: failed to get overlapping reservations: %v", ErrStorage, err)
	}

	if reqType == domain.TypeExclusive {
		// Exclusive несовместим с любым пересекающимся бронированием
		if len(overlapping) > 0 {
			if recurring {
				return fmt.Errorf("%w: slot %s overlaps a %s reservation, recurring series aborted",
					ErrConflict, slot.Start.Format(domain.DateFormat), overlapping[0].Type)
			}
			return fmt.Errorf("%w: time slot already booked (%s reservation exists)",
				ErrConflict, overlapping[0].Type)
		}
		return nil
	}

	// Shared: пересечение с exclusive - конфликт
	for _, r := range overlapping {
		if r.IsExclusive() {
			if recurring {
				return fmt.Errorf("%w: slot %s has an exclusive booking, recurring series aborted",
					ErrConflict, slot.Start.Format(domain.DateFormat))
			}
			return fmt.Errorf("%w: time slot has an exclusive booking", ErrConflict)
		}
	}

	// Shared с shared: суммарное количество участников не должно превышать
	// вместимость комнаты
	occupied := countParticipants(overlapping)
	if occupied+participantCount > room.Capacity {
		available := room.RemainingCapacity(occupied)
		return fmt.Errorf("%w: available %d, requested %d", ErrCapacityExceeded, available, participantCount)
	}

	return nil
}
