package dto

import "time"

// NotificationResponse notificación in-app.
type NotificationResponse struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

// NotificationListResponse listado de notificaciones.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Total int                    `json:"total"`
}
