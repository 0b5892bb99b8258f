package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es una línea de venta con los valores del producto congelados al
// momento de la venta. Cambios posteriores de precio en Product no la alteran.
type SaleItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"costPrice"`
}

// Sale es una venta confirmada. TotalPrice y TotalCost se calculan una sola
// vez al confirmar y se persisten; la venta es inmutable salvo los dos flags
// de estado (IsChecked, IsArchived).
type Sale struct {
	ID           string
	AccountID    string
	Items        []SaleItem // al menos una línea
	TotalPrice   decimal.Decimal
	TotalCost    decimal.Decimal
	Date         time.Time
	CustomerName string // "Guest Customer" cuando la venta es anónima
	IsChecked    bool
	IsArchived   bool
}
