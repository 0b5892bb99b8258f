package usecase

import (
	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
)

// NotificationUseCase casos de uso de notificaciones in-app.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List lista las notificaciones de la cuenta, más recientes primero.
func (uc *NotificationUseCase) List(accountID string) (*dto.NotificationListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{Items: items, Total: len(items)}, nil
}

// MarkRead marca una notificación como leída. Idempotente.
func (uc *NotificationUseCase) MarkRead(accountID, id string) error {
	return uc.repo.MarkRead(accountID, id)
}

// ClearAll elimina todas las notificaciones de la cuenta.
func (uc *NotificationUseCase) ClearAll(accountID string) error {
	return uc.repo.DeleteByAccount(accountID)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:      n.ID,
		Title:   n.Title,
		Message: n.Message,
		Type:    n.Type,
		Date:    n.Date,
		Read:    n.Read,
	}
}
