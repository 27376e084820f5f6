package patterns

import "errors"

var (
	// ErrBookingTypeNotFound возвращается, когда тип бронирования не найден
	ErrBookingTypeNotFound = errors.New("booking type not found")

	// ErrDuplicatePattern возвращается при попытке создать паттерн с уже
	// занятой парой (день недели, время начала)
	ErrDuplicatePattern = errors.New("pattern with this weekday and start time already exists")

	// ErrInvalidWindow возвращается, когда окно паттерна некорректно:
	// недопустимый день недели, неразбираемое время или start >= end
	ErrInvalidWindow = errors.New("invalid pattern window")

	// ErrAccessDenied возвращается, когда пользователь не является оператором
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
