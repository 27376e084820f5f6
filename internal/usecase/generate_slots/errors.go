package generate_slots

import "errors"

var (
	// ErrBookingTypeNotFound возвращается, когда тип бронирования не найден
	ErrBookingTypeNotFound = errors.New("generate_slots: booking type not found")

	// ErrNoPatterns возвращается, когда у типа бронирования нет шаблонов слотов
	ErrNoPatterns = errors.New("generate_slots: booking type has no slot time patterns")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("generate_slots: invalid date range")

	// ErrInvalidSlotLength возвращается при некорректной длине слота у типа бронирования
	ErrInvalidSlotLength = errors.New("generate_slots: invalid slot length")

	// ErrAccessDenied возвращается, когда пользователь не является оператором
	ErrAccessDenied = errors.New("generate_slots: access denied")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("generate_slots: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
