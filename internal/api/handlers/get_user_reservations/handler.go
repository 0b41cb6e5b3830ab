package get_user_reservations

import (
	"net/http"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/api/middleware"
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

// Handle GET /api/v1/reservations/my?includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserID(r.Context())
	includeCancelled := r.URL.Query().Get("includeCancelled") == "true"

	list, err := h.service.GetUserReservations(r.Context(), actorID, includeCancelled)
	if err != nil {
		h.logger.Error("GET /reservations/my - Failed to fetch: user_id=%d, error=%v", actorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservations(list))
}
