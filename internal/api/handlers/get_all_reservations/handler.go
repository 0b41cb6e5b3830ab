package get_all_reservations

import (
	"net/http"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations
// Админская выборка: все бронирования, включая отмененные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reservations - Failed to fetch: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservations(list))
}
