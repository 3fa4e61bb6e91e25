package entities

import "time"

// Notification - внутрисистемное уведомление. После создания неизменяемо,
// кроме флага IsRead, который может выставить только получатель.
// RequestID может ссылаться на уже удалённую заявку - читатели обязаны
// переносить "висячие" ссылки.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Message     string    `json:"message"`
	RequestID   string    `json:"request_id"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
