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

// SaleUseCase consultas y gestión de estado del historial de ventas.
// Las ventas son inmutables tras el checkout salvo los flags de estado.
type SaleUseCase struct {
	repo         repository.SaleRepository
	settingsRepo repository.SettingsRepository
	receipts     ports.ReceiptPDFGenerator
	events       ports.EventPublisher
	log          *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	repo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	receipts ports.ReceiptPDFGenerator,
	events ports.EventPublisher,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{repo: repo, settingsRepo: settingsRepo, receipts: receipts, events: events, log: log}
}

// List lista las ventas de la cuenta, más recientes primero.
func (uc *SaleUseCase) List(accountID string) (*dto.SaleListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// UpdateStatus actualiza en lote los flags isChecked/isArchived.
func (uc *SaleUseCase) UpdateStatus(ctx context.Context, accountID string, in dto.UpdateSalesStatusRequest) error {
	if in.IsChecked == nil && in.IsArchived == nil {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.UpdateStatus(accountID, in.IDs, in.IsChecked, in.IsArchived); err != nil {
		return err
	}
	publishChange(ctx, uc.events, uc.log, accountID, "sales", ports.OpUpdate)
	return nil
}

// Delete elimina ventas en lote. No restituye stock: el borrado es limpieza
// de historial, no una devolución.
func (uc *SaleUseCase) Delete(ctx context.Context, accountID string, ids []string) error {
	if len(ids) == 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.DeleteByIDs(accountID, ids); err != nil {
		return err
	}
	publishChange(ctx, uc.events, uc.log, accountID, "sales", ports.OpDelete)
	return nil
}

// Receipt genera el recibo PDF de una venta de la cuenta.
func (uc *SaleUseCase) Receipt(ctx context.Context, accountID, saleID string) ([]byte, error) {
	sale, err := uc.repo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.AccountID != accountID {
		return nil, domain.ErrNotFound
	}
	settings, err := uc.settingsRepo.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(accountID)
	}
	return uc.receipts.GenerateReceiptPDF(ctx, sale, settings)
}
