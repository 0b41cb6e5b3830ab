package stats

import "context"

// ReservationCounter интерфейс подсчета бронирований
type ReservationCounter interface {
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// RoomCounter интерфейс подсчета комнат
type RoomCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
