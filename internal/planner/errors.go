package planner

import "errors"

var (
	// ErrPastBooking возвращается, когда время начала уже в прошлом
	ErrPastBooking = errors.New("planner: cannot book time slots in the past")

	// ErrHorizonExceeded возвращается, когда обычный пользователь бронирует
	// дальше разрешенного горизонта (7 дней вперед)
	ErrHorizonExceeded = errors.New("planner: booking horizon exceeded")

	// ErrDurationExceeded возвращается, когда обычный пользователь превышает
	// максимальную длительность бронирования (5 часов)
	ErrDurationExceeded = errors.New("planner: maximum reservation duration exceeded")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("planner: room not found")

	// ErrRoomUnavailable возвращается, когда комната на обслуживании
	ErrRoomUnavailable = errors.New("planner: room is unavailable")

	// ErrConflict возвращается, когда слот пересекается с несовместимым
	// существующим бронированием (exclusive с любым, shared с exclusive)
	ErrConflict = errors.New("planner: time slot conflict")

	// ErrCapacityExceeded возвращается, когда shared бронирование превышает
	// вместимость комнаты
	ErrCapacityExceeded = errors.New("planner: room capacity exceeded")

	// ErrInvalidTimeRange возвращается, когда время конца не позже времени начала
	ErrInvalidTimeRange = errors.New("planner: end time must be after start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("planner: invalid input data")

	// ErrStorage возвращается при ошибках хранилища.
	// Всегда фатальна для текущего запроса - никогда не интерпретируется
	// как отсутствие конфликтов
	ErrStorage = errors.New("planner: storage failure")
)
