package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	"github.com/bandhall/BRS-ReservationService/pkg/dbmetrics"
	"github.com/bandhall/BRS-ReservationService/pkg/psqlbuilder"
)

// roomColumns полный набор колонок таблицы rooms
var roomColumns = []string{
	"id",
	"name",
	"capacity",
	"equipment",
	"image_url",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с комнатами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую комнату
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if room.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"name",
			"capacity",
			"equipment",
			"image_url",
			"is_available",
		).
		Values(
			room.Name,
			room.Capacity,
			pq.Array(room.Equipment),
			room.ImageURL,
			room.IsAvailable,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := r.scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List получает все комнаты, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := r.scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// Update обновляет данные комнаты
func (r *Repository) Update(ctx context.Context, room *domain.Room) error {
	if room.Capacity < 1 {
		return ErrInvalidCapacity
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Set("equipment", pq.Array(room.Equipment)).
		Set("image_url", room.ImageURL).
		Set("is_available", room.IsAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// SetAvailability переключает флаг доступности комнаты (режим обслуживания)
func (r *Repository) SetAvailability(ctx context.Context, id int64, isAvailable bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("is_available", isAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Delete удаляет комнату
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Count возвращает количество комнат
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("rooms").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRoom сканирует одну строку в модель комнаты
func (r *Repository) scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		pq.Array(&room.Equipment),
		&room.ImageURL,
		&room.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
