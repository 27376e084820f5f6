package generation

import "errors"

var (
	// ErrGenerationNotFound возвращается, когда запись генерации не найдена
	ErrGenerationNotFound = errors.New("generation.repository: slot times generation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("generation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("generation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("generation.repository: failed to scan row")
)
