package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
	"github.com/stockbit/stockbit-api/internal/domain/sales"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// DefaultCustomerName se usa cuando la venta no trae nombre de cliente.
const DefaultCustomerName = "Guest Customer"

// CheckoutUseCase confirma ventas. El commit es todo-o-nada: dentro de una
// transacción se relee cada producto con lock de fila, se revalida el stock
// fresco y se descuenta; cualquier línea inválida revierte la venta completa.
type CheckoutUseCase struct {
	productRepo repository.ProductRepository
	tx          ports.TxRunner
	alerter     *LowStockAlerter
	events      ports.EventPublisher
	log         *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso de checkout.
func NewCheckoutUseCase(
	productRepo repository.ProductRepository,
	tx ports.TxRunner,
	alerter *LowStockAlerter,
	events ports.EventPublisher,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{productRepo: productRepo, tx: tx, alerter: alerter, events: events, log: log}
}

// Checkout arma el carrito contra el stock vivo (fail-fast: la primera línea
// inválida aborta) y confirma la venta en una transacción.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, accountID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	cart := sales.NewCart()
	for _, line := range in.Items {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.AccountID != accountID {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, line.ProductID)
		}
		if err := cart.AddItem(product, line.Quantity); err != nil {
			return nil, err
		}
	}

	customer := in.CustomerName
	if customer == "" {
		customer = DefaultCustomerName
	}
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		AccountID:    accountID,
		Items:        cart.Items(),
		TotalPrice:   cart.TotalPrice(),
		TotalCost:    cart.TotalCost(),
		Date:         time.Now(),
		CustomerName: customer,
	}

	// Revalidación con lock de fila y descuento dentro de la transacción.
	// El stock pudo cambiar entre el armado del carrito y el commit.
	var touched []*entity.Product
	err := uc.tx.WithinTx(ctx, func(r ports.TxRepos) error {
		touched = touched[:0]
		for _, item := range sale.Items {
			product, err := r.Products.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
			}
			if item.Quantity > product.Quantity {
				return fmt.Errorf("%w: solo hay %d unidades de %s disponibles",
					domain.ErrInsufficientStock, product.Quantity, product.Name)
			}
			product.Quantity -= item.Quantity
			product.LastUpdated = sale.Date
			if err := r.Products.Update(product); err != nil {
				return err
			}
			touched = append(touched, product)
		}
		return r.Sales.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	for _, p := range touched {
		uc.alerter.CheckProduct(ctx, p)
	}
	publishChange(ctx, uc.events, uc.log, accountID, "sales", ports.OpInsert)
	publishChange(ctx, uc.events, uc.log, accountID, "products", ports.OpUpdate)

	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			CostPrice:   it.CostPrice,
		})
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		Items:        items,
		TotalPrice:   s.TotalPrice,
		TotalCost:    s.TotalCost,
		Date:         s.Date,
		CustomerName: s.CustomerName,
		IsChecked:    s.IsChecked,
		IsArchived:   s.IsArchived,
	}
}
