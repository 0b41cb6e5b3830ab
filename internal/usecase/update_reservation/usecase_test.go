package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	reservationRepo "github.com/bandhall/BRS-ReservationService/internal/infra/storage/reservation"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
	"github.com/bandhall/BRS-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakePlanner пропускает кандидата как есть, фиксируя последний запрос
type fakePlanner struct {
	lastEdit *planner.EditRequest
	err      error
}

func (f *fakePlanner) PlanEdit(ctx context.Context, req *planner.EditRequest) (*domain.Reservation, error) {
	f.lastEdit = req
	if f.err != nil {
		return nil, f.err
	}
	return req.Candidate, nil
}

type fakeReservationRepo struct {
	existing *domain.Reservation
	updated  *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if f.existing == nil || f.existing.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	res := *f.existing
	return &res, nil
}

func (f *fakeReservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	f.updated = res
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testStart = time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)

func existingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:               5,
		RoomID:           1,
		UserID:           10,
		BandName:         "The Testers",
		StartTime:        testStart,
		EndTime:          testStart.Add(2 * time.Hour),
		Status:           domain.StatusConfirmed,
		Type:             domain.TypeExclusive,
		ParticipantCount: 1,
	}
}

func TestExecute(t *testing.T) {
	t.Run("merges specified fields and keeps the rest", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation()}
		pl := &fakePlanner{}
		uc := NewUseCase(pl, repo, fakeTxManager{}, nopLogger{})

		newStart := testStart.Add(24 * time.Hour)
		newEnd := newStart.Add(3 * time.Hour)
		resp, err := uc.Execute(context.Background(), &Request{
			ReservationID: 5,
			ActorID:       10,
			ActorRole:     domain.RoleUser,
			BandName:      ptr.Ptr("Renamed Band"),
			StartTime:     &newStart,
			EndTime:       &newEnd,
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed Band", resp.Reservation.BandName)
		assert.True(t, resp.Reservation.StartTime.Equal(newStart))
		// Неуказанные поля сохранены из существующей записи
		assert.Equal(t, domain.TypeExclusive, resp.Reservation.Type)
		assert.Equal(t, 1, resp.Reservation.ParticipantCount)
		require.NotNil(t, repo.updated)
	})

	t.Run("owner check rejects other users", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation()}
		uc := NewUseCase(&fakePlanner{}, repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 5,
			ActorID:       77,
			ActorRole:     domain.RoleUser,
			BandName:      ptr.Ptr("Hijack"),
		})

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, repo.updated)
	})

	t.Run("admin edits any reservation", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation()}
		uc := NewUseCase(&fakePlanner{}, repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 5,
			ActorID:       77,
			ActorRole:     domain.RoleAdmin,
			Purpose:       ptr.Ptr("Генеральная репетиция"),
		})

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewUseCase(&fakePlanner{}, &fakeReservationRepo{}, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 404,
			ActorID:       10,
			ActorRole:     domain.RoleUser,
		})

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("start and end must be provided together", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation()}
		uc := NewUseCase(&fakePlanner{}, repo, fakeTxManager{}, nopLogger{})

		newStart := testStart.Add(time.Hour)
		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 5,
			ActorID:       10,
			ActorRole:     domain.RoleUser,
			StartTime:     &newStart,
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("planner rejection leaves reservation untouched", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation()}
		uc := NewUseCase(&fakePlanner{err: planner.ErrConflict}, repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID:    5,
			ActorID:          10,
			ActorRole:        domain.RoleUser,
			ParticipantCount: ptr.Ptr(3),
		})

		assert.ErrorIs(t, err, planner.ErrConflict)
		assert.Nil(t, repo.updated)
	})

	t.Run("candidate excludes itself from conflicts", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation()}
		pl := &fakePlanner{}
		uc := NewUseCase(pl, repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservationID: 5,
			ActorID:       10,
			ActorRole:     domain.RoleUser,
		})

		require.NoError(t, err)
		require.NotNil(t, pl.lastEdit)
		assert.Equal(t, int64(5), pl.lastEdit.Candidate.ID)
	})
}
