package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/api/middleware"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
	updateReservation "github.com/bandhall/BRS-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTimeFormat    = "некорректный формат времени, ожидается RFC3339"
	msgReservationNotFound  = "бронирование не найдено"
	msgAccessDenied         = "нет прав на редактирование этого бронирования"
	msgInvalidInput         = "некорректные данные бронирования"
	msgDurationExceeded     = "длительность бронирования не может превышать 5 часов"
	msgInvalidTimeRange     = "время окончания должно быть позже времени начала"
	msgRoomNotFound         = "комната не найдена"
	msgConflict             = "выбранный временной слот уже занят"
	msgCapacityExceeded     = "недостаточно свободных мест в комнате"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserID(r.Context())
	actorRole := middleware.UserRole(r.Context())

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID < 1 {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/%d - Invalid request body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, actorID, actorRole)
	if err != nil {
		h.logger.Warn("PATCH /reservations/%d - Failed to parse request: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%d - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/%d - Access denied: user_id=%d", reservationID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/%d - Invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, planner.ErrConflict):
			h.logger.Warn("PATCH /reservations/%d - Slot conflict: user_id=%d", reservationID, actorID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, planner.ErrCapacityExceeded):
			h.logger.Warn("PATCH /reservations/%d - Capacity exceeded: user_id=%d", reservationID, actorID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, planner.ErrRoomNotFound):
			h.logger.Warn("PATCH /reservations/%d - Room not found", reservationID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, planner.ErrDurationExceeded):
			h.logger.Warn("PATCH /reservations/%d - Duration exceeded: user_id=%d", reservationID, actorID)
			handlers.RespondBadRequest(w, msgDurationExceeded)

		case errors.Is(err, planner.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /reservations/%d - Invalid time range: user_id=%d", reservationID, actorID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, planner.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/%d - Invalid planner input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/%d - Failed to update reservation: user_id=%d, error=%v",
				reservationID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/%d - Reservation updated: user_id=%d", reservationID, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
