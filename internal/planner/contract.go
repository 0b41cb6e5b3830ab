package planner

import (
	"context"
	"time"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// RoomRepository интерфейс чтения комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ReservationRepository интерфейс чтения бронирований
// GetOverlapping возвращает только confirmed бронирования комнаты,
// пересекающиеся с полуоткрытым интервалом [start, end).
// excludeID исключает бронирование из выборки (используется при редактировании,
// чтобы бронирование не конфликтовало само с собой)
type ReservationRepository interface {
	GetOverlapping(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
