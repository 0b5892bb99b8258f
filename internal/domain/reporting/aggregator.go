// Package reporting implementa los rollups de reportería (servicio de dominio).
// Todas las agregaciones son puras y sin estado: cada llamada es un paso
// completo sobre los snapshots en memoria de Sale y Product, aceptable porque
// las colecciones están acotadas a los datos de una cuenta. El orden de salida
// es determinista: los empates se resuelven por orden de aparición.
package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockbit/stockbit-api/internal/domain/entity"
)

// FallbackCategory agrupa las líneas cuyo producto ya no existe en el snapshot.
const FallbackCategory = "Other"

// GuestCustomer agrupa las ventas sin nombre de cliente.
const GuestCustomer = "Guest"

// CategoryProfit es el rollup de ingreso y utilidad de una categoría.
type CategoryProfit struct {
	Category string
	Revenue  decimal.Decimal // Σ price × qty
	Profit   decimal.Decimal // Σ (price − costPrice) × qty
}

// CategoryProfits agrupa cada SaleItem por la categoría de su producto
// referenciado (FallbackCategory si la referencia no resuelve, p. ej. producto
// borrado) y suma ingreso y utilidad. El orden de salida es el de primera
// aparición de cada categoría.
func CategoryProfits(sales []entity.Sale, products []entity.Product) []CategoryProfit {
	categoryByID := make(map[string]string, len(products))
	for _, p := range products {
		categoryByID[p.ID] = p.Category
	}

	index := make(map[string]int)
	var out []CategoryProfit
	for _, s := range sales {
		for _, item := range s.Items {
			cat, ok := categoryByID[item.ProductID]
			if !ok || cat == "" {
				cat = FallbackCategory
			}
			qty := decimal.NewFromInt(int64(item.Quantity))
			revenue := item.Price.Mul(qty)
			profit := item.Price.Sub(item.CostPrice).Mul(qty)

			i, seen := index[cat]
			if !seen {
				index[cat] = len(out)
				out = append(out, CategoryProfit{Category: cat, Revenue: revenue, Profit: profit})
				continue
			}
			out[i].Revenue = out[i].Revenue.Add(revenue)
			out[i].Profit = out[i].Profit.Add(profit)
		}
	}
	return out
}

// CustomerValue es el valor de vida de un cliente: gasto acumulado y visitas.
type CustomerValue struct {
	Name       string
	TotalSpend decimal.Decimal
	VisitCount int
}

// TopCustomers agrupa las ventas por customerName (GuestCustomer si está
// vacío), suma gasto total y número de visitas, y devuelve los topN con mayor
// gasto en orden descendente. Empates por orden de primera aparición.
func TopCustomers(sales []entity.Sale, topN int) []CustomerValue {
	index := make(map[string]int)
	var out []CustomerValue
	for _, s := range sales {
		name := s.CustomerName
		if name == "" {
			name = GuestCustomer
		}
		i, seen := index[name]
		if !seen {
			index[name] = len(out)
			out = append(out, CustomerValue{Name: name, TotalSpend: s.TotalPrice, VisitCount: 1})
			continue
		}
		out[i].TotalSpend = out[i].TotalSpend.Add(s.TotalPrice)
		out[i].VisitCount++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpend.GreaterThan(out[j].TotalSpend)
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// AgingBuckets son los conteos de productos por antigüedad desde CreatedAt.
type AgingBuckets struct {
	Fresh  int // < 30 días
	Stable int // 30–90 días
	Dead   int // > 90 días
}

// StockAging clasifica cada producto por su edad en días respecto a now.
// CreatedAt en cero se trata como edad 0 (recién creado).
func StockAging(products []entity.Product, now time.Time) AgingBuckets {
	var b AgingBuckets
	for _, p := range products {
		var ageDays float64
		if !p.CreatedAt.IsZero() {
			ageDays = now.Sub(p.CreatedAt).Hours() / 24
		}
		switch {
		case ageDays < 30:
			b.Fresh++
		case ageDays < 90:
			b.Stable++
		default:
			b.Dead++
		}
	}
	return b
}

// NetMargin devuelve totalProfit / totalRevenue sobre todas las ventas.
// Con ingreso cero devuelve cero (nunca divide por cero).
func NetMargin(sales []entity.Sale) decimal.Decimal {
	totalRevenue := decimal.Zero
	totalProfit := decimal.Zero
	for _, s := range sales {
		totalRevenue = totalRevenue.Add(s.TotalPrice)
		totalProfit = totalProfit.Add(s.TotalPrice.Sub(s.TotalCost))
	}
	if totalRevenue.IsZero() {
		return decimal.Zero
	}
	return totalProfit.Div(totalRevenue)
}

// Totals devuelve ingreso y utilidad globales (para encabezados de reporte).
func Totals(sales []entity.Sale) (revenue, profit decimal.Decimal) {
	revenue, profit = decimal.Zero, decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.TotalPrice)
		profit = profit.Add(s.TotalPrice.Sub(s.TotalCost))
	}
	return revenue, profit
}
