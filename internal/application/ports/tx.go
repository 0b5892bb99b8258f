package ports

import (
	"context"

	"github.com/stockbit/stockbit-api/internal/domain/repository"
)

// TxRepos son los repositorios ligados a una transacción en curso.
type TxRepos struct {
	Products repository.ProductRepository
	Sales    repository.SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error la
// transacción se revierte completa; si no, se confirma.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
