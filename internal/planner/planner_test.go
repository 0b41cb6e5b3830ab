package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	roomRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/room"
	"github.com/bandhall/BRS-ReservationService/pkg/ptr"
)

// Фиксированное "сейчас" для детерминированных проверок политики
var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
	err   error
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetOverlapping(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.RoomID != roomID || r.Status != domain.StatusConfirmed {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if domain.IntervalsOverlap(r.StartTime, r.EndTime, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestPlanner(rooms *fakeRoomRepo, reservations *fakeReservationRepo) *Planner {
	p := NewPlanner(rooms, reservations, nopLogger{})
	p.timeProvider = &fixedTimeProvider{now: testNow}
	return p
}

func testRoom(capacity int) *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Репетиционная A", Capacity: capacity, IsAvailable: true},
	}}
}

// baseRequest валидный запрос на завтра, 2 часа, exclusive
func baseRequest(role domain.Role) *Request {
	start := testNow.Add(24 * time.Hour)
	return &Request{
		RoomID:           1,
		ActorID:          10,
		ActorRole:        role,
		BandName:         "The Testers",
		StartTime:        start,
		EndTime:          start.Add(2 * time.Hour),
		Type:             domain.TypeExclusive,
		ParticipantCount: 1,
		RecurringWeeks:   1,
	}
}

func existingReservation(id int64, resType domain.ReservationType, start, end time.Time, participants int) *domain.Reservation {
	return &domain.Reservation{
		ID:               id,
		RoomID:           1,
		UserID:           99,
		BandName:         "Occupants",
		StartTime:        start,
		EndTime:          end,
		Status:           domain.StatusConfirmed,
		Type:             resType,
		ParticipantCount: participants,
	}
}

func TestPlan_Exclusive(t *testing.T) {
	t.Run("success without conflicts", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})

		plan, err := p.Plan(context.Background(), baseRequest(domain.RoleUser))

		require.NoError(t, err)
		require.Len(t, plan.Reservations, 1)
		assert.Equal(t, domain.StatusConfirmed, plan.Reservations[0].Status)
		assert.Equal(t, int64(10), plan.Reservations[0].UserID)
	})

	t.Run("rejects any overlapping reservation", func(t *testing.T) {
		req := baseRequest(domain.RoleUser)
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			existingReservation(1, domain.TypeShared, req.StartTime.Add(time.Hour), req.EndTime.Add(time.Hour), 2),
		}}
		p := newTestPlanner(testRoom(4), repo)

		_, err := p.Plan(context.Background(), req)

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("touching boundaries is not a conflict", func(t *testing.T) {
		req := baseRequest(domain.RoleUser)
		// Существующее бронирование заканчивается ровно в момент начала нового
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			existingReservation(1, domain.TypeExclusive, req.StartTime.Add(-2*time.Hour), req.StartTime, 1),
		}}
		p := newTestPlanner(testRoom(4), repo)

		_, err := p.Plan(context.Background(), req)

		assert.NoError(t, err)
	})
}

func TestPlan_SharedCapacity(t *testing.T) {
	t.Run("shared rejects overlap with exclusive", func(t *testing.T) {
		req := baseRequest(domain.RoleUser)
		req.Type = domain.TypeShared
		req.ParticipantCount = 2
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			existingReservation(1, domain.TypeExclusive, req.StartTime, req.EndTime, 1),
		}}
		p := newTestPlanner(testRoom(10), repo)

		_, err := p.Plan(context.Background(), req)

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("capacity sum enforced", func(t *testing.T) {
		req := baseRequest(domain.RoleUser)
		req.Type = domain.TypeShared
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			existingReservation(1, domain.TypeShared, req.StartTime, req.EndTime, 2),
		}}
		// Вместимость 4, занято 2: запрос на 3 отклоняется
		p := newTestPlanner(testRoom(4), repo)

		req.ParticipantCount = 3
		_, err := p.Plan(context.Background(), req)
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		// Запрос на оставшиеся 2 места проходит
		req.ParticipantCount = 2
		plan, err := p.Plan(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 2, plan.Reservations[0].ParticipantCount)
	})

	t.Run("exclusive reservations do not count toward occupancy", func(t *testing.T) {
		// Пересекающихся exclusive нет, непересекающиеся не учитываются
		req := baseRequest(domain.RoleUser)
		req.Type = domain.TypeShared
		req.ParticipantCount = 4
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			existingReservation(1, domain.TypeExclusive, req.EndTime, req.EndTime.Add(time.Hour), 1),
		}}
		p := newTestPlanner(testRoom(4), repo)

		_, err := p.Plan(context.Background(), req)

		assert.NoError(t, err)
	})
}

func TestPlan_Policy(t *testing.T) {
	t.Run("past booking rejected for everyone", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})
		req := baseRequest(domain.RoleAdmin)
		req.StartTime = testNow.Add(-time.Hour)
		req.EndTime = testNow.Add(time.Hour)

		_, err := p.Plan(context.Background(), req)

		assert.ErrorIs(t, err, ErrPastBooking)
	})

	t.Run("horizon applies to regular users only", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})

		req := baseRequest(domain.RoleUser)
		req.StartTime = testNow.AddDate(0, 0, 8)
		req.EndTime = req.StartTime.Add(2 * time.Hour)
		_, err := p.Plan(context.Background(), req)
		assert.ErrorIs(t, err, ErrHorizonExceeded)

		req = baseRequest(domain.RoleAdmin)
		req.StartTime = testNow.AddDate(0, 0, 8)
		req.EndTime = req.StartTime.Add(2 * time.Hour)
		_, err = p.Plan(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("duration limit applies to regular users only", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})

		req := baseRequest(domain.RoleUser)
		req.EndTime = req.StartTime.Add(6 * time.Hour)
		_, err := p.Plan(context.Background(), req)
		assert.ErrorIs(t, err, ErrDurationExceeded)

		// Ровно 5 часов - допустимо
		req.EndTime = req.StartTime.Add(domain.MaxReservationDuration)
		_, err = p.Plan(context.Background(), req)
		assert.NoError(t, err)

		req = baseRequest(domain.RoleAdmin)
		req.EndTime = req.StartTime.Add(6 * time.Hour)
		_, err = p.Plan(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("end must be after start", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})
		req := baseRequest(domain.RoleUser)
		req.EndTime = req.StartTime

		_, err := p.Plan(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestPlan_Room(t *testing.T) {
	t.Run("room not found", func(t *testing.T) {
		p := newTestPlanner(&fakeRoomRepo{rooms: map[int64]*domain.Room{}}, &fakeReservationRepo{})

		_, err := p.Plan(context.Background(), baseRequest(domain.RoleUser))

		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("unavailable room rejects new bookings", func(t *testing.T) {
		rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
			1: {ID: 1, Name: "На обслуживании", Capacity: 4, IsAvailable: false},
		}}
		p := newTestPlanner(rooms, &fakeReservationRepo{})

		_, err := p.Plan(context.Background(), baseRequest(domain.RoleUser))

		assert.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("storage failure is never treated as no conflicts", func(t *testing.T) {
		repo := &fakeReservationRepo{err: errors.New("connection refused")}
		p := newTestPlanner(testRoom(4), repo)

		_, err := p.Plan(context.Background(), baseRequest(domain.RoleUser))

		assert.ErrorIs(t, err, ErrStorage)
	})
}

func TestPlan_Recurring(t *testing.T) {
	t.Run("admin series expands weekly", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})
		req := baseRequest(domain.RoleAdmin)
		req.RecurringWeeks = 3

		plan, err := p.Plan(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, plan.Reservations, 3)
		for i, res := range plan.Reservations {
			expected := req.StartTime.AddDate(0, 0, i*7)
			assert.True(t, res.StartTime.Equal(expected), "slot %d: got %s, want %s", i, res.StartTime, expected)
			assert.Equal(t, 2*time.Hour, res.EndTime.Sub(res.StartTime))
		}
	})

	t.Run("conflict in any slot aborts the whole series", func(t *testing.T) {
		req := baseRequest(domain.RoleAdmin)
		req.RecurringWeeks = 3
		// Конфликт только на второй неделе серии
		week2 := req.StartTime.AddDate(0, 0, 7)
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			existingReservation(1, domain.TypeExclusive, week2, week2.Add(time.Hour), 1),
		}}
		p := newTestPlanner(testRoom(4), repo)

		plan, err := p.Plan(context.Background(), req)

		assert.ErrorIs(t, err, ErrConflict)
		assert.Nil(t, plan)
	})

	t.Run("regular user series silently clamped to one slot", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})
		req := baseRequest(domain.RoleUser)
		req.RecurringWeeks = 4

		plan, err := p.Plan(context.Background(), req)

		require.NoError(t, err)
		assert.Len(t, plan.Reservations, 1)
	})
}

func TestPlanEdit(t *testing.T) {
	start := testNow.Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)

	candidate := func() *domain.Reservation {
		res := existingReservation(5, domain.TypeExclusive, start, end, 1)
		res.UserID = 10
		return res
	}

	t.Run("reservation does not conflict with itself", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			existingReservation(5, domain.TypeExclusive, start, end, 1),
		}}
		p := newTestPlanner(testRoom(4), repo)

		res, err := p.PlanEdit(context.Background(), &EditRequest{Candidate: candidate(), ActorRole: domain.RoleUser})

		require.NoError(t, err)
		assert.Equal(t, int64(5), res.ID)
	})

	t.Run("conflict with another reservation", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			existingReservation(5, domain.TypeExclusive, start, end, 1),
			existingReservation(6, domain.TypeExclusive, start, end, 1),
		}}
		p := newTestPlanner(testRoom(4), repo)

		_, err := p.PlanEdit(context.Background(), &EditRequest{Candidate: candidate(), ActorRole: domain.RoleUser})

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("horizon does not apply to edits", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})
		c := candidate()
		c.StartTime = testNow.AddDate(0, 0, 30)
		c.EndTime = c.StartTime.Add(2 * time.Hour)

		_, err := p.PlanEdit(context.Background(), &EditRequest{Candidate: c, ActorRole: domain.RoleUser})

		assert.NoError(t, err)
	})

	t.Run("duration limit still applies to regular users", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})
		c := candidate()
		c.EndTime = c.StartTime.Add(6 * time.Hour)

		_, err := p.PlanEdit(context.Background(), &EditRequest{Candidate: c, ActorRole: domain.RoleUser})
		assert.ErrorIs(t, err, ErrDurationExceeded)

		_, err = p.PlanEdit(context.Background(), &EditRequest{Candidate: c, ActorRole: domain.RoleAdmin})
		assert.NoError(t, err)
	})

	t.Run("invalid time range", func(t *testing.T) {
		p := newTestPlanner(testRoom(4), &fakeReservationRepo{})
		c := candidate()
		c.EndTime = c.StartTime

		_, err := p.PlanEdit(context.Background(), &EditRequest{Candidate: c, ActorRole: domain.RoleUser})

		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestExpandSlots(t *testing.T) {
	start := time.Date(2026, 1, 29, 18, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	slots := expandSlots(start, end, 4)

	require.Len(t, slots, 4)
	// Шаг календарный: слоты сохраняют настенное время через границу месяца
	assert.Equal(t, time.Date(2026, 2, 19, 18, 0, 0, 0, time.UTC), slots[3].Start)
	for _, slot := range slots {
		assert.Equal(t, 3*time.Hour, slot.End.Sub(slot.Start))
	}
}

func TestCountParticipants(t *testing.T) {
	reservations := []*domain.Reservation{
		{Type: domain.TypeShared, ParticipantCount: 3},
		{Type: domain.TypeShared, ParticipantCount: 0}, // floor до 1
		{Type: domain.TypeExclusive, ParticipantCount: 5},
	}

	assert.Equal(t, 4, countParticipants(reservations))
}

func TestRequestNormalize(t *testing.T) {
	req := &Request{
		RoomID:    1,
		ActorID:   10,
		ActorRole: domain.RoleUser,
		BandID:    ptr.Ptr(int64(7)),
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}
	req.normalize()

	assert.Equal(t, domain.TypeExclusive, req.Type)
	assert.Equal(t, 1, req.ParticipantCount)
	assert.Equal(t, 1, req.RecurringWeeks)
}
