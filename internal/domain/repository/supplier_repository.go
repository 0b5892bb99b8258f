package repository

import "github.com/stockbit/stockbit-api/internal/domain/entity"

// SupplierRepository define la persistencia del directorio de proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	ListByAccount(accountID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
