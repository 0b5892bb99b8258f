// Package sales implementa el carrito de venta (servicio de dominio).
// El carrito acumula líneas candidatas con chequeo de sobreventa contra la
// lectura de stock vivo disponible al momento de agregar; la validación final
// contra el stock fresco ocurre en el commit transaccional del caso de uso.
package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
)

// Cart es un carrito pendiente. Las líneas congelan precio y costo al momento
// de AddItem; un cambio de precio posterior en Product no las afecta.
type Cart struct {
	lines []entity.SaleItem
}

// NewCart crea un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem agrega requestedQty unidades del producto al carrito, validando
// contra product.Quantity (lectura de stock vivo, posiblemente obsoleta).
// Si el producto ya está en el carrito, la línea existente se incrementa y la
// cantidad combinada se revalida; las líneas nunca se parten ni se recortan.
// Devuelve ErrInsufficientStock (con el tope de stock en el mensaje) si la
// cantidad pedida o combinada excede el stock.
func (c *Cart) AddItem(product *entity.Product, requestedQty int) error {
	if product == nil {
		return domain.ErrNotFound
	}
	if requestedQty <= 0 {
		return domain.ErrInvalidInput
	}
	for i, line := range c.lines {
		if line.ProductID != product.ID {
			continue
		}
		combined := line.Quantity + requestedQty
		if combined > product.Quantity {
			return fmt.Errorf("%w: solo hay %d unidades de %s disponibles",
				domain.ErrInsufficientStock, product.Quantity, product.Name)
		}
		c.lines[i].Quantity = combined
		return nil
	}
	if requestedQty > product.Quantity {
		return fmt.Errorf("%w: solo hay %d unidades de %s disponibles",
			domain.ErrInsufficientStock, product.Quantity, product.Name)
	}
	c.lines = append(c.lines, entity.SaleItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    requestedQty,
		Price:       product.Price,
		CostPrice:   product.CostPrice,
	})
	return nil
}

// RemoveItem quita la línea del producto. Idempotente: no falla si no existe.
func (c *Cart) RemoveItem(productID string) {
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Items devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Items() []entity.SaleItem {
	out := make([]entity.SaleItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len devuelve el número de líneas del carrito.
func (c *Cart) Len() int { return len(c.lines) }

// TotalPrice es Σ(price × qty) sobre las líneas (valores congelados en AddItem).
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// TotalCost es Σ(costPrice × qty) sobre las líneas.
func (c *Cart) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.CostPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
