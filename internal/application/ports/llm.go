package ports

import (
	"context"

	"github.com/stockbit/stockbit-api/internal/application/dto"
)

// InsightProduct resumen de un producto para el contexto de insights.
type InsightProduct struct {
	Name   string `json:"name"`
	Stock  int    `json:"stock"`
	Min    int    `json:"min"`
	Price  string `json:"price"`
	Batch  string `json:"batch,omitempty"`
	Expiry string `json:"expiry,omitempty"`
}

// InsightSaleLine resumen de una línea de venta reciente.
type InsightSaleLine struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
	Date string `json:"date"`
}

// LLMService es el puerto hacia el modelo de visión/lenguaje externo.
// Los fallos se devuelven como error sin taxonomía estructurada: el caller
// los trata como "sin resultado" y ofrece reintento manual.
type LLMService interface {
	// IdentifyProduct busca un código de barras, SKU o nombre en la imagen.
	// Devuelve "" (sin error) cuando el modelo no encuentra identificador.
	IdentifyProduct(ctx context.Context, imageBase64 string) (string, error)

	// ExtractProductDetails extrae la ficha estructurada de una etiqueta.
	ExtractProductDetails(ctx context.Context, imageBase64 string) (*dto.AIProductDetailsDTO, error)

	// InventoryInsights genera viñetas de asesoría a partir del resumen de
	// inventario y ventas recientes.
	InventoryInsights(ctx context.Context, inventory []InsightProduct, recentSales []InsightSaleLine) (string, error)
}
