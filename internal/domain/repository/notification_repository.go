package repository

import "github.com/stockbit/stockbit-api/internal/domain/entity"

// NotificationRepository define la persistencia de notificaciones in-app.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListByAccount(accountID string) ([]*entity.Notification, error)
	MarkRead(accountID, id string) error
	DeleteByAccount(accountID string) error
}
