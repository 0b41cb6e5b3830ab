package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")

	// ErrInvalidCapacity возвращается при недопустимой вместимости комнаты
	ErrInvalidCapacity = errors.New("room.repository: invalid room capacity")
)
