package create_reservation

import "errors"

// Ошибки политики, конфликтов и вместимости приходят из пакета planner
// (единая таксономия для создания, recurring-создания и редактирования)
// и возвращаются caller-у без переупаковки

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
