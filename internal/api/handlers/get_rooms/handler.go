package get_rooms

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
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to fetch rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainRooms(list))
}

// HandleByID GET /api/v1/rooms/{roomId}
func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID < 1 {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/%d - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("GET /rooms/%d - Failed to fetch room: %v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainRoom(room))
}
