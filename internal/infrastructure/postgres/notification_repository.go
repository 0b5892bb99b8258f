package postgres

import (
	"context"
	"fmt"

	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, account_id, title, message, type, date, read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.AccountID, n.Title, n.Message, n.Type, n.Date, n.Read)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByAccount lista las notificaciones de la cuenta, más recientes primero.
func (r *NotificationRepo) ListByAccount(accountID string) ([]*entity.Notification, error) {
	query := `
		SELECT id, account_id, title, message, type, date, read
		FROM notifications WHERE account_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.Title, &n.Message, &n.Type, &n.Date, &n.Read); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación como leída. Idempotente.
func (r *NotificationRepo) MarkRead(accountID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET read = true WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// DeleteByAccount elimina todas las notificaciones de la cuenta.
func (r *NotificationRepo) DeleteByAccount(accountID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM notifications WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("delete notifications: %w", err)
	}
	return nil
}
