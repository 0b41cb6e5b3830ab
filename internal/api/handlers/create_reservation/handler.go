package create_reservation

import (
	"errors"
	"net/http"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/api/middleware"
	"github.com/bandhall/BRS-ReservationService/internal/planner"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается RFC3339"
	msgPastBooking        = "нельзя бронировать время в прошлом"
	msgHorizonExceeded    = "бронирование доступно не более чем за 7 дней"
	msgDurationExceeded   = "длительность бронирования не может превышать 5 часов"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgInvalidInput       = "некорректные данные бронирования"
	msgRoomNotFound       = "комната не найдена"
	msgRoomUnavailable    = "комната временно не принимает бронирования"
	msgConflict           = "выбранный временной слот уже занят"
	msgCapacityExceeded   = "недостаточно свободных мест в комнате"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserID(r.Context())
	actorRole := middleware.UserRole(r.Context())

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(actorID, actorRole)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, planner.ErrConflict):
			h.logger.Warn("POST /reservations - Slot conflict: user_id=%d, room_id=%d", actorID, req.RoomID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, planner.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: user_id=%d, room_id=%d", actorID, req.RoomID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, planner.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, planner.ErrRoomUnavailable):
			h.logger.Warn("POST /reservations - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomUnavailable)

		case errors.Is(err, planner.ErrPastBooking):
			h.logger.Warn("POST /reservations - Past booking attempt: user_id=%d, room_id=%d", actorID, req.RoomID)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, planner.ErrHorizonExceeded):
			h.logger.Warn("POST /reservations - Horizon exceeded: user_id=%d, room_id=%d", actorID, req.RoomID)
			handlers.RespondBadRequest(w, msgHorizonExceeded)

		case errors.Is(err, planner.ErrDurationExceeded):
			h.logger.Warn("POST /reservations - Duration exceeded: user_id=%d, room_id=%d", actorID, req.RoomID)
			handlers.RespondBadRequest(w, msgDurationExceeded)

		case errors.Is(err, planner.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Invalid time range: user_id=%d, room_id=%d", actorID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, planner.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, room_id=%d: %v", actorID, req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, room_id=%d, error=%v",
				actorID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Created %d reservation(s): user_id=%d, room_id=%d",
		len(result.Reservations), actorID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
