package manage_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/service/rooms"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoomData    = "некорректные данные комнаты"
	msgInvalidCapacity    = "вместимость комнаты должна быть не меньше 1"
	msgRoomNotFound       = "комната не найдена"
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

// HandleCreate POST /api/v1/admin/rooms
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), req.ToDomainRoom())
	if err != nil {
		h.respondServiceError(w, "POST /admin/rooms", err)
		return
	}

	h.logger.Info("POST /admin/rooms - Room created: id=%d, name=%q", room.ID, room.Name)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainRoom(room))
}

// HandleUpdate PATCH /api/v1/admin/rooms/{roomId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID < 1 {
		h.logger.Warn("PATCH /admin/rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/rooms/%d - Invalid request body: %v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Читаем текущее состояние и накладываем изменения
	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		h.respondServiceError(w, "PATCH /admin/rooms", err)
		return
	}
	req.ApplyTo(room)

	updated, err := h.service.Update(r.Context(), room)
	if err != nil {
		h.respondServiceError(w, "PATCH /admin/rooms", err)
		return
	}

	h.logger.Info("PATCH /admin/rooms/%d - Room updated", roomID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainRoom(updated))
}

// HandleSetAvailability PATCH /api/v1/admin/rooms/{roomId}/availability
func (h *Handler) HandleSetAvailability(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID < 1 {
		h.logger.Warn("PATCH /admin/rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/rooms/%d/availability - Invalid request body: %v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetAvailability(r.Context(), roomID, req.IsAvailable); err != nil {
		h.respondServiceError(w, "PATCH /admin/rooms/availability", err)
		return
	}

	h.logger.Info("PATCH /admin/rooms/%d/availability - Availability set to %t", roomID, req.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandleDelete DELETE /api/v1/admin/rooms/{roomId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID < 1 {
		h.logger.Warn("DELETE /admin/rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		h.respondServiceError(w, "DELETE /admin/rooms", err)
		return
	}

	h.logger.Info("DELETE /admin/rooms/%d - Room deleted", roomID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// respondServiceError мапит ошибки сервиса комнат на HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		h.logger.Warn("%s - Room not found", op)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, rooms.ErrInvalidCapacity):
		h.logger.Warn("%s - Invalid capacity: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidCapacity)

	case errors.Is(err, rooms.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRoomData)

	default:
		h.logger.Error("%s - Service error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
