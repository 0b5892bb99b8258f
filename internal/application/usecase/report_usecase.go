package usecase

import (
	"time"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/reporting"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
)

// topCustomersLimit clientes mostrados en el reporte.
const topCustomersLimit = 5

// ReportUseCase arma el reporte de la cuenta. Los rollups se recalculan bajo
// demanda en cada llamada, sin cachés ni precómputo.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, productRepo: productRepo}
}

// Build obtiene ventas y productos en paralelo y calcula los rollups.
func (uc *ReportUseCase) Build(accountID string) (*dto.ReportResponse, error) {
	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	salesCh := make(chan salesResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		s, err := uc.saleRepo.ListByAccount(accountID)
		salesCh <- salesResult{sales: s, err: err}
	}()
	go func() {
		p, err := uc.productRepo.ListByAccount(accountID)
		productsCh <- productsResult{products: p, err: err}
	}()

	sr := <-salesCh
	pr := <-productsCh
	if sr.err != nil {
		return nil, sr.err
	}
	if pr.err != nil {
		return nil, pr.err
	}

	sales := make([]entity.Sale, 0, len(sr.sales))
	for _, s := range sr.sales {
		sales = append(sales, *s)
	}
	products := make([]entity.Product, 0, len(pr.products))
	for _, p := range pr.products {
		products = append(products, *p)
	}

	revenue, profit := reporting.Totals(sales)
	out := &dto.ReportResponse{
		TotalRevenue: revenue,
		TotalProfit:  profit,
		NetMargin:    reporting.NetMargin(sales),
		StockAging:   dto.StockAgingDTO{},
	}

	for _, cp := range reporting.CategoryProfits(sales, products) {
		out.CategoryProfit = append(out.CategoryProfit, dto.CategoryProfitDTO{
			Category: cp.Category,
			Revenue:  cp.Revenue,
			Profit:   cp.Profit,
		})
	}
	for _, cv := range reporting.TopCustomers(sales, topCustomersLimit) {
		out.TopCustomers = append(out.TopCustomers, dto.CustomerValueDTO{
			Name:       cv.Name,
			TotalSpend: cv.TotalSpend,
			VisitCount: cv.VisitCount,
		})
	}
	aging := reporting.StockAging(products, time.Now())
	out.StockAging = dto.StockAgingDTO{Fresh: aging.Fresh, Stable: aging.Stable, Dead: aging.Dead}

	return out, nil
}
