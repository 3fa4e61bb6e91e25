package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

type NotificationRepositoryInterface interface {
	CreateNotification(ctx context.Context, n *entities.Notification) error
	GetByRecipient(ctx context.Context, recipientID string, limit uint64) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}

type NotificationRepository struct {
	storage querier
}

func NewNotificationRepository(storage *pgxpool.Pool) NotificationRepositoryInterface {
	return &NotificationRepository{storage: storage}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n *entities.Notification) error {
	query := `INSERT INTO notifications (id, recipient_id, message, request_id, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.storage.Exec(ctx, query,
		n.ID, n.RecipientID, n.Message, n.RequestID, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания уведомления: %w", err)
	}
	return nil
}

func (r *NotificationRepository) GetByRecipient(ctx context.Context, recipientID string, limit uint64) ([]entities.Notification, error) {
	query := `SELECT id, recipient_id, message, request_id, is_read, created_at
	          FROM notifications WHERE recipient_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.Query(ctx, query, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения уведомлений: %w", err)
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0)
	for rows.Next() {
		var n entities.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Message, &n.RequestID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования уведомления: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead отмечает уведомление прочитанным только для его получателя.
// Чужое (или несуществующее) уведомление неотличимо от отсутствующего.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return fmt.Errorf("ошибка отметки уведомления прочитанным: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
