package repository

import "github.com/stockbit/stockbit-api/internal/domain/entity"

// SaleRepository define la persistencia de ventas. Las ventas son inmutables
// tras su creación salvo los flags de estado (isChecked / isArchived).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByAccount(accountID string) ([]*entity.Sale, error)
	// UpdateStatus actualiza los flags de las ventas indicadas. Un puntero nil
	// deja el flag sin tocar.
	UpdateStatus(accountID string, ids []string, isChecked, isArchived *bool) error
	DeleteByIDs(accountID string, ids []string) error
}
