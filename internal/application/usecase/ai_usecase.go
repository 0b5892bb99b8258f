package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

const (
	aiTimeout         = 30 * time.Second
	insightsSaleLimit = 20
)

// AIUseCase orquesta las operaciones asistidas por el modelo de visión y
// lenguaje: identificación por imagen, extracción de etiqueta e insights.
type AIUseCase struct {
	llm         ports.LLMService
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	log         *logger.Logger
}

// NewAIUseCase construye el caso de uso. llm puede ser nil cuando no hay
// proveedor configurado.
func NewAIUseCase(llm ports.LLMService, productRepo repository.ProductRepository, saleRepo repository.SaleRepository, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, productRepo: productRepo, saleRepo: saleRepo, log: log}
}

// Enabled indica si hay proveedor de IA configurado.
func (uc *AIUseCase) Enabled() bool {
	return uc.llm != nil
}

// IdentifyProduct busca un código de barras, SKU o nombre en la imagen.
// Cuando el modelo no encuentra identificador responde Found=false sin error.
func (uc *AIUseCase) IdentifyProduct(ctx context.Context, imageBase64 string) (*dto.AIIdentifyResponse, error) {
	if uc.llm == nil {
		return nil, domain.ErrAIUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	identifier, err := uc.llm.IdentifyProduct(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("identificar producto: %w", err)
	}
	if identifier == "" {
		return &dto.AIIdentifyResponse{Found: false}, nil
	}
	return &dto.AIIdentifyResponse{Found: true, Identifier: identifier}, nil
}

// ExtractProductDetails extrae la ficha estructurada de una etiqueta.
func (uc *AIUseCase) ExtractProductDetails(ctx context.Context, imageBase64 string) (*dto.AIProductDetailsDTO, error) {
	if uc.llm == nil {
		return nil, domain.ErrAIUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	details, err := uc.llm.ExtractProductDetails(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("extraer detalles de producto: %w", err)
	}
	return details, nil
}

// InventoryInsights arma el resumen de inventario y de las ventas más
// recientes y pide al modelo las viñetas de asesoría.
func (uc *AIUseCase) InventoryInsights(ctx context.Context, accountID string) (*dto.AIInsightsResponse, error) {
	if uc.llm == nil {
		return nil, domain.ErrAIUnavailable
	}
	products, err := uc.productRepo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListByAccount(accountID)
	if err != nil {
		return nil, err
	}

	inventory := make([]ports.InsightProduct, 0, len(products))
	for _, p := range products {
		ip := ports.InsightProduct{
			Name:  p.Name,
			Stock: p.Quantity,
			Min:   p.MinThreshold,
			Price: p.Price.StringFixed(2),
			Batch: p.BatchNumber,
		}
		if p.ExpiryDate != nil {
			ip.Expiry = p.ExpiryDate.Format("2006-01-02")
		}
		inventory = append(inventory, ip)
	}

	// El listado viene más reciente primero; solo las últimas ventas aportan
	// señal al modelo.
	recent := make([]ports.InsightSaleLine, 0, insightsSaleLimit)
	for _, s := range sales {
		for _, item := range s.Items {
			recent = append(recent, ports.InsightSaleLine{
				Name: item.ProductName,
				Qty:  item.Quantity,
				Date: s.Date.Format("2006-01-02"),
			})
			if len(recent) == insightsSaleLimit {
				break
			}
		}
		if len(recent) == insightsSaleLimit {
			break
		}
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.llm.InventoryInsights(ctx, inventory, recent)
	if err != nil {
		return nil, fmt.Errorf("generar insights: %w", err)
	}
	return &dto.AIInsightsResponse{Insights: text}, nil
}
