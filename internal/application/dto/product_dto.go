package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	SKU          string          `json:"sku" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	MinThreshold int             `json:"minThreshold" validate:"min=0"`
	SupplierID   string          `json:"supplierId"`
	BatchNumber  string          `json:"batchNumber"`
	ExpiryDate   *time.Time      `json:"expiryDate"`
}

// UpdateProductRequest actualización parcial; nil deja el campo sin tocar.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Category     *string          `json:"category"`
	Price        *decimal.Decimal `json:"price"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	Quantity     *int             `json:"quantity"`
	MinThreshold *int             `json:"minThreshold"`
	SupplierID   *string          `json:"supplierId"`
	BatchNumber  *string          `json:"batchNumber"`
	ExpiryDate   *time.Time       `json:"expiryDate"`
}

// ProductResponse producto con su estado de stock derivado.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	Quantity     int             `json:"quantity"`
	MinThreshold int             `json:"minThreshold"`
	SupplierID   string          `json:"supplierId,omitempty"`
	BatchNumber  string          `json:"batchNumber,omitempty"`
	ExpiryDate   *time.Time      `json:"expiryDate,omitempty"`
	StockStatus  string          `json:"stockStatus"`  // critical | warning | healthy
	ExpiryStatus string          `json:"expiryStatus"` // expired | expires_soon | none
	LastUpdated  time.Time       `json:"lastUpdated"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ProductListResponse listado completo de la cuenta.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
