package slottime

import "errors"

var (
	// ErrSlotTimeNotFound возвращается, когда слот не найден
	ErrSlotTimeNotFound = errors.New("slottime.repository: slot time not found")

	// ErrOverlap возвращается, когда новый слот пересекается по времени
	// с существующим слотом того же типа бронирования
	ErrOverlap = errors.New("slottime.repository: slot time overlaps with an existing one")

	// ErrSlotAlreadyTaken возвращается при попытке занять уже занятый слот
	ErrSlotAlreadyTaken = errors.New("slottime.repository: slot time is already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slottime.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slottime.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slottime.repository: failed to scan row")
)
