package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
	"github.com/stockbit/stockbit-api/internal/domain/stock"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos. La categoría se valida
// contra el vocabulario de Settings al momento del input.
type ProductUseCase struct {
	repo         repository.ProductRepository
	settingsRepo repository.SettingsRepository
	alerter      *LowStockAlerter
	events       ports.EventPublisher
	log          *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	alerter *LowStockAlerter,
	events ports.EventPublisher,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, settingsRepo: settingsRepo, alerter: alerter, events: events, log: log}
}

// Create crea un producto. El SKU debe ser único dentro de la cuenta y la
// categoría debe pertenecer al vocabulario configurado.
func (uc *ProductUseCase) Create(ctx context.Context, accountID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByAccountAndSKU(accountID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkCategory(accountID, in.Category); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		AccountID:    accountID,
		Name:         in.Name,
		SKU:          in.SKU,
		Category:     in.Category,
		Price:        in.Price,
		CostPrice:    in.CostPrice,
		Quantity:     in.Quantity,
		MinThreshold: in.MinThreshold,
		SupplierID:   in.SupplierID,
		BatchNumber:  in.BatchNumber,
		ExpiryDate:   in.ExpiryDate,
		LastUpdated:  now,
		CreatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	publishChange(ctx, uc.events, uc.log, accountID, "products", ports.OpInsert)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la cuenta. (nil, nil) si no existe o
// pertenece a otra cuenta.
func (uc *ProductUseCase) GetByID(accountID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.AccountID != accountID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos de la cuenta con su estado derivado.
func (uc *ProductUseCase) List(accountID string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza un producto (parcial). Si la cantidad baja, evalúa la
// alerta de stock crítico.
func (uc *ProductUseCase) Update(ctx context.Context, accountID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.AccountID != accountID {
		return nil, nil
	}
	prevQty := product.Quantity

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		existing, _ := uc.repo.GetByAccountAndSKU(product.AccountID, *in.SKU)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Category != nil {
		if err := uc.checkCategory(product.AccountID, *in.Category); err != nil {
			return nil, err
		}
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.MinThreshold != nil {
		if *in.MinThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinThreshold = *in.MinThreshold
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.BatchNumber != nil {
		product.BatchNumber = *in.BatchNumber
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	product.LastUpdated = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if product.Quantity < prevQty && uc.alerter != nil {
		uc.alerter.CheckProduct(ctx, product)
	}
	publishChange(ctx, uc.events, uc.log, product.AccountID, "products", ports.OpUpdate)
	return toProductResponse(product), nil
}

// Delete elimina un producto de la cuenta.
func (uc *ProductUseCase) Delete(ctx context.Context, accountID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.AccountID != accountID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	publishChange(ctx, uc.events, uc.log, accountID, "products", ports.OpDelete)
	return nil
}

// checkCategory valida la categoría contra el vocabulario de la cuenta.
// Sin Settings persistido aún, se acepta cualquier categoría (validación de
// input, no constraint duro).
func (uc *ProductUseCase) checkCategory(accountID, category string) error {
	settings, err := uc.settingsRepo.GetByAccount(accountID)
	if err != nil || settings == nil {
		return nil
	}
	if !settings.HasCategory(category) {
		return domain.ErrUnknownCategory
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     p.Category,
		Price:        p.Price,
		CostPrice:    p.CostPrice,
		Quantity:     p.Quantity,
		MinThreshold: p.MinThreshold,
		SupplierID:   p.SupplierID,
		BatchNumber:  p.BatchNumber,
		ExpiryDate:   p.ExpiryDate,
		StockStatus:  string(stock.Classify(p.Quantity, p.MinThreshold)),
		ExpiryStatus: string(stock.ExpiryStatus(p.ExpiryDate, time.Now())),
		LastUpdated:  p.LastUpdated,
		CreatedAt:    p.CreatedAt,
	}
}
