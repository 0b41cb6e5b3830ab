package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
	"github.com/bandhall/BRS-ReservationService/pkg/dbmetrics"
	"github.com/bandhall/BRS-ReservationService/pkg/psqlbuilder"
)

// reservationColumns полный набор колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"room_id",
	"user_id",
	"band_id",
	"band_name",
	"contact_info",
	"purpose",
	"start_time",
	"end_time",
	"status",
	"type",
	"participant_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// При создании по плану планировщика вызывается внутри сериализуемой транзакции,
// чтобы проверка конфликтов и вставка были атомарны
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"room_id",
			"user_id",
			"band_id",
			"band_name",
			"contact_info",
			"purpose",
			"start_time",
			"end_time",
			"status",
			"type",
			"participant_count",
		).
		Values(
			res.RoomID,
			res.UserID,
			res.BandID,
			res.BandName,
			res.ContactInfo,
			res.Purpose,
			res.StartTime,
			res.EndTime,
			res.Status,
			res.Type,
			res.ParticipantCount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetOverlapping получает confirmed бронирования комнаты, пересекающиеся
// с полуоткрытым интервалом [start, end).
// Предикат пересечения: start_time < end AND end_time > start -
// соприкосновение границ пересечением не считается.
// excludeID исключает бронирование из выборки (путь редактирования).
// Внутри транзакции добавляется FOR UPDATE: строки блокируются до конца
// транзакции, чтобы два конкурентных запроса не прошли проверку одновременно
func (r *Repository) GetOverlapping(
	ctx context.Context,
	roomID int64,
	start, end time.Time,
	excludeID *int64,
) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по комнате, пользователю, периоду и статусу
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_time": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_time": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusConfirmed})
	}

	// Сначала новые - для списков пользователя и админской выборки
	selectBuilder = selectBuilder.OrderBy("start_time DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Update обновляет изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("band_name", res.BandName).
		Set("contact_info", res.ContactInfo).
		Set("purpose", res.Purpose).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Set("type", res.Type).
		Set("participant_count", res.ParticipantCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
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
		return ErrReservationNotFound
	}

	return nil
}

// Cancel переводит бронирование в статус cancelled (мягкое удаление).
// Отмененные бронирования не участвуют в проверке конфликтов
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование физически (админский путь).
// Для обычной отмены используется Cancel - история сохраняется
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

// Count возвращает общее количество бронирований
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// CountActive возвращает количество confirmed бронирований
func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	status := domain.StatusConfirmed
	return r.count(ctx, &status)
}

func (r *Repository) count(ctx context.Context, status *domain.ReservationStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("reservations")
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в модель бронирования
func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.UserID,
		&res.BandID,
		&res.BandName,
		&res.ContactInfo,
		&res.Purpose,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.Type,
		&res.ParticipantCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
