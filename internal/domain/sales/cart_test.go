package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/sales"
)

func producto(id string, qty int, price, cost float64) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Producto " + id,
		Quantity:  qty,
		Price:     decimal.NewFromFloat(price),
		CostPrice: decimal.NewFromFloat(cost),
	}
}

func TestCart_AddItem_SobreventaDirecta(t *testing.T) {
	c := sales.NewCart()
	err := c.AddItem(producto("p1", 5, 100, 60), 6)

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "5", "el mensaje debe indicar el tope de stock")
	assert.Equal(t, 0, c.Len(), "la línea no debe agregarse")
}

// Escenario de sobreventa combinada: qty 3 y luego qty 4 contra stock 5.
// La segunda llamada falla y el carrito conserva solo la primera línea.
func TestCart_AddItem_CombinaYRevalida(t *testing.T) {
	p := producto("p1", 5, 100, 60)
	c := sales.NewCart()

	require.NoError(t, c.AddItem(p, 3))
	err := c.AddItem(p, 4)

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity, "la línea original queda intacta")
}

func TestCart_AddItem_IncrementaLineaExistente(t *testing.T) {
	p := producto("p1", 10, 100, 60)
	c := sales.NewCart()

	require.NoError(t, c.AddItem(p, 3))
	require.NoError(t, c.AddItem(p, 4))

	items := c.Items()
	require.Len(t, items, 1, "las líneas del mismo producto se fusionan, no se parten")
	assert.Equal(t, 7, items[0].Quantity)
}

func TestCart_RemoveItem_Idempotente(t *testing.T) {
	c := sales.NewCart()
	require.NoError(t, c.AddItem(producto("p1", 5, 100, 60), 2))

	c.RemoveItem("p1")
	assert.Equal(t, 0, c.Len())
	c.RemoveItem("p1") // ausente: no debe fallar ni hacer panic
	c.RemoveItem("inexistente")
}

func TestCart_Totales(t *testing.T) {
	c := sales.NewCart()
	require.NoError(t, c.AddItem(producto("p1", 10, 100, 60), 2))
	require.NoError(t, c.AddItem(producto("p2", 10, 50, 20), 1))

	assert.True(t, c.TotalPrice().Equal(decimal.NewFromInt(250)), "total = 2*100 + 1*50")
	assert.True(t, c.TotalCost().Equal(decimal.NewFromInt(140)), "costo = 2*60 + 1*20")
}

// Los totales usan el precio congelado en AddItem, no el estado vivo del producto.
func TestCart_TotalesInvariantesACambiosDePrecio(t *testing.T) {
	p := producto("p1", 10, 100, 60)
	c := sales.NewCart()
	require.NoError(t, c.AddItem(p, 2))

	p.Price = decimal.NewFromInt(999)
	p.CostPrice = decimal.NewFromInt(500)

	assert.True(t, c.TotalPrice().Equal(decimal.NewFromInt(200)))
	assert.True(t, c.TotalCost().Equal(decimal.NewFromInt(120)))
}

func TestCart_AddItem_CantidadInvalida(t *testing.T) {
	c := sales.NewCart()
	assert.ErrorIs(t, c.AddItem(producto("p1", 5, 100, 60), 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.AddItem(producto("p1", 5, 100, 60), -2), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.AddItem(nil, 1), domain.ErrNotFound)
}
