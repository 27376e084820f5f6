package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier публикует уведомления в очередь RabbitMQ. Ошибки доставки
// не влияют на бизнес-операции: вызывающая сторона логирует их и
// продолжает работу, повторная отправка не выполняется.
type Notifier struct {
	channel *amqp091.Channel
	queue   string
	log     Logger
}

// New создает Notifier поверх существующего соединения с RabbitMQ.
// Очередь объявляется durable, чтобы уведомления переживали рестарт брокера.
func New(conn *amqp091.Connection, queue string, log Logger) (*Notifier, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChannel, err)
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("%w: declare queue %q: %v", ErrChannel, queue, err)
	}

	return &Notifier{
		channel: channel,
		queue:   queue,
		log:     log,
	}, nil
}

// Close закрывает канал RabbitMQ
func (n *Notifier) Close() error {
	return n.channel.Close()
}

// Notify публикует уведомление с указанным шаблоном и контекстом
func (n *Notifier) Notify(ctx context.Context, template string, recipients []string, notifyCtx map[string]interface{}) error {
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	body, err := json.Marshal(Notification{
		Template:   template,
		Recipients: recipients,
		Context:    notifyCtx,
	})
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrPublish, err)
	}

	message := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	if err := n.channel.PublishWithContext(ctx, "", n.queue, false, false, message); err != nil {
		return fmt.Errorf("%w: template=%s: %v", ErrPublish, template, err)
	}

	n.log.Info("Notification published: template=%s, recipients=%d", template, len(recipients))
	return nil
}
