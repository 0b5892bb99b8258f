package reporting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/reporting"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func venta(customer string, totalPrice, totalCost int64, items ...entity.SaleItem) entity.Sale {
	return entity.Sale{
		CustomerName: customer,
		Items:        items,
		TotalPrice:   d(totalPrice),
		TotalCost:    d(totalCost),
	}
}

// Escenario de la categoría sin resolver: una línea de Electronics
// (precio 100, costo 60, qty 2) y una línea cuyo producto fue borrado.
func TestCategoryProfits_FallbackOther(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Category: "Electronics"},
	}
	sales := []entity.Sale{
		venta("", 200, 120, entity.SaleItem{ProductID: "p1", Quantity: 2, Price: d(100), CostPrice: d(60)}),
		venta("", 30, 18, entity.SaleItem{ProductID: "borrado", Quantity: 3, Price: d(10), CostPrice: d(6)}),
	}

	out := reporting.CategoryProfits(sales, products)
	require.Len(t, out, 2)

	assert.Equal(t, "Electronics", out[0].Category)
	assert.True(t, out[0].Revenue.Equal(d(200)))
	assert.True(t, out[0].Profit.Equal(d(80)))

	assert.Equal(t, "Other", out[1].Category, "producto no resuelto cae en Other")
	assert.True(t, out[1].Revenue.Equal(d(30)))
	assert.True(t, out[1].Profit.Equal(d(12)), "la utilidad se calcula igual aunque la categoría no resuelva")
}

func TestCategoryProfits_AcumulaPorCategoria(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Category: "Groceries"},
		{ID: "p2", Category: "Groceries"},
	}
	sales := []entity.Sale{
		venta("", 0, 0,
			entity.SaleItem{ProductID: "p1", Quantity: 1, Price: d(10), CostPrice: d(4)},
			entity.SaleItem{ProductID: "p2", Quantity: 2, Price: d(5), CostPrice: d(2)},
		),
	}

	out := reporting.CategoryProfits(sales, products)
	require.Len(t, out, 1)
	assert.True(t, out[0].Revenue.Equal(d(20)))
	assert.True(t, out[0].Profit.Equal(d(12)))
}

func TestTopCustomers_OrdenYGuest(t *testing.T) {
	sales := []entity.Sale{
		venta("Ada", 100, 0),
		venta("", 70, 0),
		venta("Ben", 250, 0),
		venta("Ada", 100, 0),
		venta("", 30, 0),
	}

	out := reporting.TopCustomers(sales, 5)
	require.Len(t, out, 3)

	assert.Equal(t, "Ben", out[0].Name)
	assert.Equal(t, "Ada", out[1].Name)
	assert.Equal(t, 2, out[1].VisitCount)
	assert.True(t, out[1].TotalSpend.Equal(d(200)))
	assert.Equal(t, "Guest", out[2].Name, "ventas sin cliente se agrupan como Guest")
	assert.True(t, out[2].TotalSpend.Equal(d(100)))
}

func TestTopCustomers_TopNYEmpates(t *testing.T) {
	sales := []entity.Sale{
		venta("Primero", 100, 0),
		venta("Segundo", 100, 0),
		venta("Tercero", 100, 0),
	}

	out := reporting.TopCustomers(sales, 2)
	require.Len(t, out, 2)
	// Empate total: el orden de primera aparición decide (sort estable).
	assert.Equal(t, "Primero", out[0].Name)
	assert.Equal(t, "Segundo", out[1].Name)
}

func TestStockAging_Buckets(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	age := func(days int) time.Time { return now.AddDate(0, 0, -days) }

	products := []entity.Product{
		{ID: "a", CreatedAt: age(5)},
		{ID: "b", CreatedAt: age(29)},
		{ID: "c", CreatedAt: age(30)},
		{ID: "d", CreatedAt: age(89)},
		{ID: "e", CreatedAt: age(91)},
		{ID: "f"}, // sin createdAt → edad 0 → fresh
	}

	b := reporting.StockAging(products, now)
	assert.Equal(t, 3, b.Fresh)
	assert.Equal(t, 2, b.Stable)
	assert.Equal(t, 1, b.Dead)
}

func TestNetMargin_IngresoCeroEsCero(t *testing.T) {
	assert.True(t, reporting.NetMargin(nil).IsZero())
	assert.True(t, reporting.NetMargin([]entity.Sale{venta("", 0, 0)}).IsZero())
}

func TestNetMargin_Calculo(t *testing.T) {
	sales := []entity.Sale{
		venta("", 200, 120),
		venta("", 100, 80),
	}
	// utilidad 100 sobre ingreso 300
	margin := reporting.NetMargin(sales)
	expected := decimal.NewFromInt(100).Div(decimal.NewFromInt(300))
	assert.True(t, margin.Equal(expected))
}

// Mismo input, mismo output: las agregaciones son deterministas.
func TestAgregaciones_Deterministas(t *testing.T) {
	products := []entity.Product{{ID: "p1", Category: "Textiles"}}
	sales := []entity.Sale{
		venta("Ada", 50, 30, entity.SaleItem{ProductID: "p1", Quantity: 1, Price: d(50), CostPrice: d(30)}),
		venta("Ben", 50, 20, entity.SaleItem{ProductID: "px", Quantity: 1, Price: d(50), CostPrice: d(30)}),
	}

	first := reporting.CategoryProfits(sales, products)
	second := reporting.CategoryProfits(sales, products)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Category, second[i].Category)
		assert.True(t, first[i].Revenue.Equal(second[i].Revenue))
	}
}
