package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakePlanner struct {
	plan *planner.Plan
	err  error
}

func (f *fakePlanner) Plan(ctx context.Context, req *planner.Request) (*planner.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.plan, nil
}

type fakeReservationRepo struct {
	created []*domain.Reservation
	failOn  int // вставка с этим порядковым номером (с 1) падает, 0 - не падает
	err     error
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.failOn > 0 && len(f.created)+1 == f.failOn {
		return nil, f.err
	}
	saved := *res
	saved.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &saved)
	return &saved, nil
}

// fakeTxManager выполняет fn без транзакции, фиксируя вызовы
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func testRequest() *Request {
	start := time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)
	return &Request{
		RoomID:           1,
		ActorID:          10,
		ActorRole:        domain.RoleAdmin,
		BandName:         "The Testers",
		StartTime:        start,
		EndTime:          start.Add(2 * time.Hour),
		Type:             domain.TypeExclusive,
		ParticipantCount: 1,
		RecurringWeeks:   3,
	}
}

func seriesPlan(weeks int) *planner.Plan {
	req := testRequest()
	reservations := make([]domain.Reservation, weeks)
	for i := range reservations {
		reservations[i] = domain.Reservation{
			RoomID:    req.RoomID,
			UserID:    req.ActorID,
			BandName:  req.BandName,
			StartTime: req.StartTime.AddDate(0, 0, i*7),
			EndTime:   req.EndTime.AddDate(0, 0, i*7),
			Status:    domain.StatusConfirmed,
			Type:      req.Type,
		}
	}
	return &planner.Plan{
		Room:         &domain.Room{ID: 1, Capacity: 4, IsAvailable: true},
		Reservations: reservations,
	}
}

func TestExecute(t *testing.T) {
	t.Run("creates every slot of the series inside a transaction", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		txMgr := &fakeTxManager{}
		uc := NewUseCase(&fakePlanner{plan: seriesPlan(3)}, repo, txMgr, nopLogger{})

		resp, err := uc.Execute(context.Background(), testRequest())

		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 3)
		assert.Len(t, repo.created, 3)
		assert.Equal(t, 1, txMgr.calls)
	})

	t.Run("planner rejection produces zero inserts", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		uc := NewUseCase(&fakePlanner{err: planner.ErrConflict}, repo, &fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), testRequest())

		assert.ErrorIs(t, err, planner.ErrConflict)
		assert.Nil(t, resp)
		assert.Empty(t, repo.created)
	})

	t.Run("planner errors pass through without rewrapping", func(t *testing.T) {
		uc := NewUseCase(&fakePlanner{err: planner.ErrCapacityExceeded}, &fakeReservationRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), testRequest())

		assert.ErrorIs(t, err, planner.ErrCapacityExceeded)
		assert.NotErrorIs(t, err, ErrInternal)
	})

	t.Run("insert failure mid-series returns internal error", func(t *testing.T) {
		repo := &fakeReservationRepo{failOn: 2, err: assert.AnError}
		uc := NewUseCase(&fakePlanner{plan: seriesPlan(3)}, repo, &fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), testRequest())

		assert.ErrorIs(t, err, ErrInternal)
		assert.Nil(t, resp)
	})
}
