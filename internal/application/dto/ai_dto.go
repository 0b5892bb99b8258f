package dto

import "github.com/shopspring/decimal"

// AIImageRequest imagen JPEG en base64 para identificación o extracción.
type AIImageRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
}

// AIIdentifyResponse identificador detectado en la imagen.
// Found es false cuando el modelo no encontró código ni nombre ("sin resultado").
type AIIdentifyResponse struct {
	Found      bool   `json:"found"`
	Identifier string `json:"identifier,omitempty"`
}

// AIProductDetailsDTO ficha estructurada extraída de una etiqueta de producto.
type AIProductDetailsDTO struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	BatchNumber string          `json:"batchNumber,omitempty"`
	ExpiryDate  string          `json:"expiryDate,omitempty"` // YYYY-MM-DD si es visible
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
}

// AIInsightsResponse texto de insights generado por el modelo.
type AIInsightsResponse struct {
	Insights string `json:"insights"`
}
