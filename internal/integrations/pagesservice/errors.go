package pagesservice

import "errors"

var (
	// ErrRootPageNotFound возвращается, когда корневая страница
	// приложения не настроена
	ErrRootPageNotFound = errors.New("pagesservice client: root page not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pagesservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("pagesservice client: invalid response")
)
