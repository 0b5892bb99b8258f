package entity

import "time"

// Tipos de notificación in-app.
const (
	NotificationLowStock = "low_stock"
	NotificationSale     = "sale"
	NotificationSystem   = "system"
)

// Notification es una notificación in-app de la cuenta.
type Notification struct {
	ID        string
	AccountID string
	Title     string
	Message   string
	Type      string // low_stock | sale | system
	Date      time.Time
	Read      bool
}
