package dto

import "github.com/shopspring/decimal"

// CategoryProfitDTO ingreso y utilidad por categoría.
type CategoryProfitDTO struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Profit   decimal.Decimal `json:"profit"`
}

// CustomerValueDTO valor de vida de un cliente.
type CustomerValueDTO struct {
	Name       string          `json:"name"`
	TotalSpend decimal.Decimal `json:"totalSpend"`
	VisitCount int             `json:"visitCount"`
}

// StockAgingDTO conteos por bucket de antigüedad.
type StockAgingDTO struct {
	Fresh  int `json:"fresh"`  // < 30 días
	Stable int `json:"stable"` // 30–90 días
	Dead   int `json:"dead"`   // > 90 días
}

// ReportResponse reporte completo de la cuenta, recalculado bajo demanda.
type ReportResponse struct {
	TotalRevenue   decimal.Decimal     `json:"totalRevenue"`
	TotalProfit    decimal.Decimal     `json:"totalProfit"`
	NetMargin      decimal.Decimal     `json:"netMargin"` // 0 con ingreso cero
	CategoryProfit []CategoryProfitDTO `json:"categoryProfit"`
	TopCustomers   []CustomerValueDTO  `json:"topCustomers"`
	StockAging     StockAgingDTO       `json:"stockAging"`
}
