package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	reservationRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	byID       map[int64]*domain.Reservation
	cancelled  []int64
	deleted    []int64
	lastFilter domain.ReservationFilter
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeRepo) GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	byID := make(map[int64]*domain.Reservation)
	for _, r := range reservations {
		byID[r.ID] = r
	}
	return &fakeRepo{byID: byID}
}

func confirmedReservation(id, userID int64) *domain.Reservation {
	start := time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:        id,
		RoomID:    1,
		UserID:    userID,
		BandName:  "The Testers",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Status:    domain.StatusConfirmed,
		Type:      domain.TypeExclusive,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(5, 10))
	svc := NewService(repo, nopLogger{})

	t.Run("owner reads own reservation", func(t *testing.T) {
		res, err := svc.GetByID(context.Background(), 5, 10, domain.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 77, domain.RoleUser)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin reads any reservation", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 77, domain.RoleAdmin)
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404, 10, domain.RoleUser)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels own reservation", func(t *testing.T) {
		repo := newFakeRepo(confirmedReservation(5, 10))
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 5, 10, domain.RoleUser)

		require.NoError(t, err)
		assert.Equal(t, []int64{5}, repo.cancelled)
	})

	t.Run("repeated cancel is rejected", func(t *testing.T) {
		res := confirmedReservation(5, 10)
		res.Status = domain.StatusCancelled
		repo := newFakeRepo(res)
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 5, 10, domain.RoleUser)

		assert.ErrorIs(t, err, ErrAlreadyCancelled)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := newFakeRepo(confirmedReservation(5, 10))
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 5, 77, domain.RoleUser)

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})
}

func TestDelete(t *testing.T) {
	t.Run("admin deletes any reservation", func(t *testing.T) {
		repo := newFakeRepo(confirmedReservation(5, 10))
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 5, 77, domain.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, []int64{5}, repo.deleted)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		repo := newFakeRepo(confirmedReservation(5, 10))
		svc := NewService(repo, nopLogger{})

		err := svc.Delete(context.Background(), 5, 77, domain.RoleUser)

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.deleted)
	})
}

func TestGetUserReservations(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetUserReservations(context.Background(), 10, true)

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.UserID)
	assert.Equal(t, int64(10), *repo.lastFilter.UserID)
	assert.True(t, repo.lastFilter.IncludeCancelled)
}
