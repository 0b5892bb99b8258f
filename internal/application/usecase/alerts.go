package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
	"github.com/stockbit/stockbit-api/internal/domain/stock"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// LowStockAlerter genera la notificación in-app (y el correo, si está
// habilitado en Settings) cuando un producto queda en estado crítico.
// Los fallos de notificación nunca abortan la operación de negocio que los
// disparó: se registran y se sigue.
type LowStockAlerter struct {
	notifRepo    repository.NotificationRepository
	settingsRepo repository.SettingsRepository
	mailer       ports.MailSender
	log          *logger.Logger
}

// NewLowStockAlerter construye el alertador. mailer puede ser nil (sin SMTP).
func NewLowStockAlerter(
	notifRepo repository.NotificationRepository,
	settingsRepo repository.SettingsRepository,
	mailer ports.MailSender,
	log *logger.Logger,
) *LowStockAlerter {
	return &LowStockAlerter{notifRepo: notifRepo, settingsRepo: settingsRepo, mailer: mailer, log: log}
}

// CheckProduct evalúa el estado del producto y dispara la alerta si es crítico.
func (a *LowStockAlerter) CheckProduct(ctx context.Context, product *entity.Product) {
	if a == nil || product == nil {
		return
	}
	if stock.Classify(product.Quantity, product.MinThreshold) != stock.StatusCritical {
		return
	}

	n := &entity.Notification{
		ID:        uuid.New().String(),
		AccountID: product.AccountID,
		Title:     "Stock bajo",
		Message:   fmt.Sprintf("%s quedó en %d unidades (mínimo %d)", product.Name, product.Quantity, product.MinThreshold),
		Type:      entity.NotificationLowStock,
		Date:      time.Now(),
	}
	if err := a.notifRepo.Create(n); err != nil {
		a.log.Warn().Err(err).Str("product_id", product.ID).Msg("crear notificación de stock bajo")
	}

	if a.mailer == nil {
		return
	}
	settings, err := a.settingsRepo.GetByAccount(product.AccountID)
	if err != nil || settings == nil {
		return
	}
	if !settings.LowStockEmailAlerts || settings.NotificationEmail == "" {
		return
	}
	alert := ports.LowStockAlert{
		To:           settings.NotificationEmail,
		CompanyName:  settings.CompanyName,
		ProductName:  product.Name,
		SKU:          product.SKU,
		Quantity:     product.Quantity,
		MinThreshold: product.MinThreshold,
	}
	if err := a.mailer.SendLowStockAlert(alert); err != nil {
		a.log.Warn().Err(err).Str("product_id", product.ID).Msg("enviar correo de stock bajo")
	}
}
