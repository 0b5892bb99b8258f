package dto

// StocktakeCountDTO cantidad física contada de un producto.
type StocktakeCountDTO struct {
	ProductID   string `json:"productId" validate:"required"`
	PhysicalQty int    `json:"physicalQty" validate:"min=0"`
}

// ReconcileRequest conteo físico a reconciliar. Los productos no incluidos
// se asumen contados igual a su cantidad de sistema (sin ajuste).
type ReconcileRequest struct {
	Counts []StocktakeCountDTO `json:"counts" validate:"dive"`
}

// StocktakeLineDTO resultado del diff de un producto.
type StocktakeLineDTO struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	SystemQty   int    `json:"systemQty"`
	PhysicalQty int    `json:"physicalQty"`
	Delta       int    `json:"delta"`
	Status      string `json:"status"` // matched | needs_adjustment
}

// AdjustmentResultDTO resultado de aplicar un ajuste individual.
type AdjustmentResultDTO struct {
	ProductID   string `json:"productId"`
	SetQuantity int    `json:"setQuantity"`
	Applied     bool   `json:"applied"`
	Error       string `json:"error,omitempty"` // "not_found" se reporta como warning, no aborta el batch
}

// ReconcileReportResponse reporte del batch de reconciliación.
// Los ajustes se aplican de forma independiente: el reporte distingue cuáles
// se aplicaron y cuáles fallaron (visibilidad de fallo parcial).
type ReconcileReportResponse struct {
	Lines         []StocktakeLineDTO    `json:"lines"`
	Adjustments   []AdjustmentResultDTO `json:"adjustments"`
	TotalItems    int                   `json:"totalItems"`
	MismatchCount int                   `json:"mismatchCount"`
	HealthPercent float64               `json:"healthPercent"`
	AppliedCount  int                   `json:"appliedCount"`
	FailedCount   int                   `json:"failedCount"`
}
