package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutLine una línea candidata del carrito.
type CheckoutLine struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest confirma una venta con las líneas del carrito.
type CheckoutRequest struct {
	Items        []CheckoutLine `json:"items" validate:"required,min=1,dive"`
	CustomerName string         `json:"customerName"`
}

// SaleItemDTO línea de venta con valores congelados.
type SaleItemDTO struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"costPrice"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID           string          `json:"id"`
	Items        []SaleItemDTO   `json:"items"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	Date         time.Time       `json:"date"`
	CustomerName string          `json:"customerName,omitempty"`
	IsChecked    bool            `json:"isChecked"`
	IsArchived   bool            `json:"isArchived"`
}

// SaleListResponse listado de ventas de la cuenta.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// UpdateSalesStatusRequest actualización masiva de flags de estado.
type UpdateSalesStatusRequest struct {
	IDs        []string `json:"ids" validate:"required,min=1"`
	IsChecked  *bool    `json:"isChecked"`
	IsArchived *bool    `json:"isArchived"`
}

// DeleteSalesRequest borrado masivo de ventas.
type DeleteSalesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
