package cancel_reservation

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
	msgAccessDenied         = "нет прав на отмену этого бронирования"
	msgAlreadyCancelled     = "бронирование уже отменено"
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

// Handle POST /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserID(r.Context())
	actorRole := middleware.UserRole(r.Context())

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID < 1 {
		h.logger.Warn("POST /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), reservationID, actorID, actorRole); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/%d/cancel - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /reservations/%d/cancel - Access denied: user_id=%d", reservationID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrAlreadyCancelled):
			h.logger.Warn("POST /reservations/%d/cancel - Already cancelled", reservationID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("POST /reservations/%d/cancel - Failed to cancel: user_id=%d, error=%v",
				reservationID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/%d/cancel - Reservation cancelled: user_id=%d", reservationID, actorID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
