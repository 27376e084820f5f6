package get_free_slots

import "errors"

var (
	// ErrBookingTypeNotFound возвращается, когда тип бронирования не найден по slug
	ErrBookingTypeNotFound = errors.New("get_free_slots: booking type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_slots: internal error")
)
