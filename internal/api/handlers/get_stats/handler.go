package get_stats

import (
	"net/http"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
)

// SummaryResponse HTTP response model
type SummaryResponse struct {
	RoomCount              int64 `json:"roomCount"`
	ReservationCount       int64 `json:"reservationCount"`
	ActiveReservationCount int64 `json:"activeReservationCount"`
}

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to collect summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SummaryResponse{
		RoomCount:              summary.RoomCount,
		ReservationCount:       summary.ReservationCount,
		ActiveReservationCount: summary.ActiveReservationCount,
	})
}
