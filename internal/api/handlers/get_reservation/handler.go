package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/api/middleware"
	"github.com/bandhall/BRS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgAccessDenied         = "нет прав на просмотр этого бронирования"
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

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserID(r.Context())
	actorRole := middleware.UserRole(r.Context())

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID < 1 {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	res, err := h.service.GetByID(r.Context(), reservationID, actorID, actorRole)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/%d - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/%d - Access denied: user_id=%d", reservationID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /reservations/%d - Failed to fetch: error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservation(res))
}
