package notifier

// Шаблоны уведомлений, известные почтовому воркеру
const (
	TemplateBookingCreatedBooker   = "booking_created_booker"
	TemplateBookingCreatedOperator = "booking_created_operator"
)

// Notification сообщение для почтового воркера. Сервис только публикует
// его в очередь; рендеринг шаблона и доставка - ответственность воркера.
type Notification struct {
	Template   string                 `json:"template"`
	Recipients []string               `json:"recipients"`
	Context    map[string]interface{} `json:"context"`
}
