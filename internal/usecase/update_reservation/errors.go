package update_reservation

import "errors"

// Ошибки конфликтов и вместимости приходят из пакета planner
// и возвращаются caller-у без переупаковки

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrAccessDenied возвращается, когда пользователь редактирует чужое
	// бронирование, не будучи админом
	ErrAccessDenied = errors.New("update_reservation: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
