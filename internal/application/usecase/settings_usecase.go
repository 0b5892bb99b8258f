package usecase

import (
	"context"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// SettingsUseCase casos de uso de la configuración de cuenta.
type SettingsUseCase struct {
	repo   repository.SettingsRepository
	events ports.EventPublisher
	log    *logger.Logger
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, events ports.EventPublisher, log *logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, events: events, log: log}
}

// Get devuelve la configuración de la cuenta. Si la cuenta aún no tiene
// Settings persistido, lo crea con los valores por defecto.
func (uc *SettingsUseCase) Get(accountID string) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(accountID)
		if err := uc.repo.Upsert(settings); err != nil {
			return nil, err
		}
	}
	return toSettingsResponse(settings), nil
}

// Update aplica una actualización parcial de la configuración.
func (uc *SettingsUseCase) Update(ctx context.Context, accountID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(accountID)
	}
	if in.CompanyName != nil {
		settings.CompanyName = *in.CompanyName
	}
	if in.Currency != nil {
		settings.Currency = *in.Currency
	}
	if in.Categories != nil {
		if len(*in.Categories) == 0 {
			return nil, domain.ErrInvalidInput
		}
		settings.Categories = *in.Categories
	}
	if in.LowStockEmailAlerts != nil {
		settings.LowStockEmailAlerts = *in.LowStockEmailAlerts
	}
	if in.NotificationEmail != nil {
		settings.NotificationEmail = *in.NotificationEmail
	}
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	publishChange(ctx, uc.events, uc.log, accountID, "settings", ports.OpUpdate)
	return toSettingsResponse(settings), nil
}

// AddCategory agrega una categoría al vocabulario. Agregar una ya existente
// es no-op.
func (uc *SettingsUseCase) AddCategory(ctx context.Context, accountID, category string) (*dto.SettingsResponse, error) {
	if category == "" {
		return nil, domain.ErrInvalidInput
	}
	settings, err := uc.repo.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(accountID)
	}
	if !settings.HasCategory(category) {
		settings.Categories = append(settings.Categories, category)
		if err := uc.repo.Upsert(settings); err != nil {
			return nil, err
		}
		publishChange(ctx, uc.events, uc.log, accountID, "settings", ports.OpUpdate)
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyName:         s.CompanyName,
		Currency:            s.Currency,
		Categories:          s.Categories,
		LowStockEmailAlerts: s.LowStockEmailAlerts,
		NotificationEmail:   s.NotificationEmail,
	}
}
