package get_stats

import (
	"context"

	"github.com/bandhall/BRS-ReservationService/internal/service/stats"
)

type StatsService interface {
	GetSummary(ctx context.Context) (*stats.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
