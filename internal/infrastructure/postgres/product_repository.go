package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, account_id, name, sku, category, price, cost_price, quantity, min_threshold, supplier_id, batch_number, expiry_date, last_updated, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.AccountID, product.Name, product.SKU, product.Category,
		product.Price, product.CostPrice, product.Quantity, product.MinThreshold,
		product.SupplierID, product.BatchNumber, product.ExpiryDate,
		product.LastUpdated, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate lee el producto bloqueando la fila. Solo dentro de una tx.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByAccountAndSKU obtiene un producto por cuenta y SKU.
func (r *ProductRepo) GetByAccountAndSKU(accountID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE account_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, accountID, sku))
}

// ListByAccount lista los productos de la cuenta, más recientes primero.
func (r *ProductRepo) ListByAccount(accountID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE account_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos mutables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, sku = $3, category = $4, price = $5, cost_price = $6,
			quantity = $7, min_threshold = $8, supplier_id = $9, batch_number = $10,
			expiry_date = $11, last_updated = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Category, product.Price,
		product.CostPrice, product.Quantity, product.MinThreshold, product.SupplierID,
		product.BatchNumber, product.ExpiryDate, product.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetQuantity fija la cantidad absoluta del producto (reconciliación).
func (r *ProductRepo) SetQuantity(productID string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, last_updated = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.AccountID, &p.Name, &p.SKU, &p.Category, &p.Price, &p.CostPrice,
		&p.Quantity, &p.MinThreshold, &p.SupplierID, &p.BatchNumber, &p.ExpiryDate,
		&p.LastUpdated, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
