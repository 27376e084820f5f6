package generations

import "errors"

var (
	// ErrGenerationNotFound возвращается, когда прогон генерации не найден
	ErrGenerationNotFound = errors.New("slot times generation not found")

	// ErrBookingTypeNotFound возвращается, когда тип бронирования не найден
	ErrBookingTypeNotFound = errors.New("booking type not found")

	// ErrAccessDenied возвращается, когда пользователь не является оператором
	ErrAccessDenied = errors.New("access denied: operator capability required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
