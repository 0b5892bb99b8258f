package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// Una fila por cuenta (account_id es la primary key).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de persistencia para la configuración.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetByAccount obtiene la configuración de la cuenta. (nil, nil) si no existe.
func (r *SettingsRepo) GetByAccount(accountID string) (*entity.Settings, error) {
	query := `
		SELECT account_id, company_name, currency, categories, low_stock_email_alerts, notification_email
		FROM settings WHERE account_id = $1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query, accountID).Scan(
		&s.AccountID, &s.CompanyName, &s.Currency, &s.Categories,
		&s.LowStockEmailAlerts, &s.NotificationEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza la configuración de la cuenta.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (account_id, company_name, currency, categories, low_stock_email_alerts, notification_email)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			currency = EXCLUDED.currency,
			categories = EXCLUDED.categories,
			low_stock_email_alerts = EXCLUDED.low_stock_email_alerts,
			notification_email = EXCLUDED.notification_email`
	_, err := r.q.Exec(context.Background(), query,
		settings.AccountID, settings.CompanyName, settings.Currency,
		settings.Categories, settings.LowStockEmailAlerts, settings.NotificationEmail,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
