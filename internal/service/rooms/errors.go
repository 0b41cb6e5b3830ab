package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidCapacity возвращается при недопустимой вместимости комнаты
	ErrInvalidCapacity = errors.New("room capacity must be at least 1")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
