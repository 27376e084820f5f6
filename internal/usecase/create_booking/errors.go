package create_booking

import "errors"

var (
	// ErrSlotTimeNotFound возвращается, когда слот не найден
	ErrSlotTimeNotFound = errors.New("create_booking: slot time not found")

	// ErrSlotAlreadyTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotAlreadyTaken = errors.New("create_booking: slot is already taken")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
