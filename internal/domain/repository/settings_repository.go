package repository

import "github.com/stockbit/stockbit-api/internal/domain/entity"

// SettingsRepository define la persistencia del singleton de configuración.
type SettingsRepository interface {
	GetByAccount(accountID string) (*entity.Settings, error)
	// Upsert crea o reemplaza la configuración de la cuenta.
	Upsert(settings *entity.Settings) error
}
