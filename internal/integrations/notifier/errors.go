package notifier

import "errors"

var (
	// ErrPublish возвращается при ошибке публикации сообщения в очередь
	ErrPublish = errors.New("notifier: failed to publish notification")

	// ErrChannel возвращается при ошибке открытия канала RabbitMQ
	ErrChannel = errors.New("notifier: failed to open channel")

	// ErrNoRecipients возвращается при попытке отправить уведомление
	// без адресатов
	ErrNoRecipients = errors.New("notifier: no recipients")
)
