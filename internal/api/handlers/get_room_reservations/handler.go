package get_room_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgRoomNotFound  = "комната не найдена"
)

type Handler struct {
	reservations ReservationService
	rooms        RoomService
	logger       Logger
}

func NewHandler(reservations ReservationService, rooms RoomService, logger Logger) *Handler {
	return &Handler{
		reservations: reservations,
		rooms:        rooms,
		logger:       logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/reservations
// Возвращает confirmed бронирования комнаты для отображения расписания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID < 1 {
		h.logger.Warn("GET /rooms/{id}/reservations - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Проверяем существование комнаты, чтобы отличить пустое расписание от 404
	if _, err := h.rooms.GetByID(r.Context(), roomID); err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/%d/reservations - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("GET /rooms/%d/reservations - Failed to fetch room: %v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	list, err := h.reservations.GetRoomReservations(r.Context(), roomID)
	if err != nil {
		h.logger.Error("GET /rooms/%d/reservations - Failed to fetch reservations: %v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservations(list))
}
