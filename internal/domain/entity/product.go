package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de una cuenta de negocio.
// Quantity es el stock vivo de la tienda (una sola ubicación); nunca queda
// negativo como resultado de una venta. CostPrice y Price son montos decimales.
type Product struct {
	ID           string
	AccountID    string
	Name         string
	SKU          string // único por cuenta (código de barras o identificador)
	Category     string // debe pertenecer al vocabulario de Settings.Categories
	Price        decimal.Decimal
	CostPrice    decimal.Decimal
	Quantity     int
	MinThreshold int
	SupplierID   string // opcional: referencia a Supplier
	BatchNumber  string
	ExpiryDate   *time.Time // opcional
	LastUpdated  time.Time
	CreatedAt    time.Time // usado para el aging de stock
}
