package pattern

import "errors"

var (
	// ErrPatternNotFound возвращается, когда паттерн не найден
	ErrPatternNotFound = errors.New("pattern.repository: slot time pattern not found")

	// ErrDuplicatePattern возвращается при попытке создать паттерн
	// с уже существующей парой (день недели, время начала) для того же
	// типа бронирования
	ErrDuplicatePattern = errors.New("pattern.repository: pattern with this weekday and start time already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pattern.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pattern.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pattern.repository: failed to scan row")
)
