package repository

import "github.com/stockbit/stockbit-api/internal/domain/entity"

// ProductRepository define la persistencia de productos.
// Convención: (nil, nil) cuando el recurso no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate lee el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (checkout de venta).
	GetByIDForUpdate(id string) (*entity.Product, error)
	GetByAccountAndSKU(accountID, sku string) (*entity.Product, error)
	ListByAccount(accountID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// SetQuantity fija la cantidad absoluta de un producto (reconciliación).
	// Devuelve domain.ErrNotFound si el producto no existe.
	SetQuantity(productID string, quantity int) error
	Delete(id string) error
}
