package usecase

import (
	"context"
	"errors"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
	"github.com/stockbit/stockbit-api/internal/domain/stocktake"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// StocktakeUseCase reconcilia un conteo físico contra el inventario del
// sistema. Los ajustes se aplican como escrituras independientes (no hay
// transacción que los cubra): un ajuste fallido no revierte los ya aplicados
// y el reporte final distingue aplicados de fallidos.
type StocktakeUseCase struct {
	productRepo repository.ProductRepository
	alerter     *LowStockAlerter
	events      ports.EventPublisher
	log         *logger.Logger
}

// NewStocktakeUseCase construye el caso de uso.
func NewStocktakeUseCase(
	productRepo repository.ProductRepository,
	alerter *LowStockAlerter,
	events ports.EventPublisher,
	log *logger.Logger,
) *StocktakeUseCase {
	return &StocktakeUseCase{productRepo: productRepo, alerter: alerter, events: events, log: log}
}

// Reconcile ejecuta el diff y aplica los ajustes. Los productos de la cuenta
// no incluidos en el conteo se asumen contados igual a su cantidad de sistema.
// Un producto contado que ya no existe se reporta como warning sin abortar.
func (uc *StocktakeUseCase) Reconcile(ctx context.Context, accountID string, in dto.ReconcileRequest) (*dto.ReconcileReportResponse, error) {
	products, err := uc.productRepo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}

	counted := make(map[string]int, len(in.Counts))
	for _, c := range in.Counts {
		if c.PhysicalQty < 0 {
			return nil, domain.ErrInvalidInput
		}
		counted[c.ProductID] = c.PhysicalQty
	}

	report := &dto.ReconcileReportResponse{}
	items := make([]stocktake.Item, 0, len(products))
	nameByID := make(map[string]string, len(products))
	for _, p := range products {
		physical, ok := counted[p.ID]
		if !ok {
			physical = p.Quantity
		}
		delete(counted, p.ID)
		items = append(items, stocktake.Item{ProductID: p.ID, SystemQty: p.Quantity, PhysicalQty: physical})
		nameByID[p.ID] = p.Name
	}
	// IDs contados que no resolvieron a ningún producto de la cuenta.
	for id, qty := range counted {
		report.Adjustments = append(report.Adjustments, dto.AdjustmentResultDTO{
			ProductID:   id,
			SetQuantity: qty,
			Applied:     false,
			Error:       "not_found",
		})
		report.FailedCount++
	}

	for _, it := range items {
		report.Lines = append(report.Lines, dto.StocktakeLineDTO{
			ProductID:   it.ProductID,
			ProductName: nameByID[it.ProductID],
			SystemQty:   it.SystemQty,
			PhysicalQty: it.PhysicalQty,
			Delta:       it.Delta(),
			Status:      string(it.Classify()),
		})
	}

	summary := stocktake.Summarize(items)
	report.TotalItems = summary.TotalItems
	report.MismatchCount = summary.MismatchCount
	report.HealthPercent = summary.HealthPercent

	applied := false
	for _, adj := range stocktake.Plan(items) {
		result := dto.AdjustmentResultDTO{ProductID: adj.ProductID, SetQuantity: adj.SetQuantity}
		if err := uc.productRepo.SetQuantity(adj.ProductID, adj.SetQuantity); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				result.Error = "not_found"
			} else {
				result.Error = err.Error()
			}
			uc.log.Warn().Err(err).Str("product_id", adj.ProductID).Msg("ajuste de reconciliación fallido")
			report.FailedCount++
		} else {
			result.Applied = true
			report.AppliedCount++
			applied = true
			if adj.Delta < 0 {
				if p, err := uc.productRepo.GetByID(adj.ProductID); err == nil && p != nil {
					uc.alerter.CheckProduct(ctx, p)
				}
			}
		}
		report.Adjustments = append(report.Adjustments, result)
	}

	if applied {
		publishChange(ctx, uc.events, uc.log, accountID, "products", ports.OpUpdate)
	}
	return report, nil
}
