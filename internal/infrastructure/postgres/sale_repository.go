package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las líneas de venta se persisten como snapshot jsonb dentro de la fila: la
// venta congela nombre, precio y costo al confirmarse y no se normaliza.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta confirmada.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		INSERT INTO sales (id, account_id, items, total_price, total_cost, date, customer_name, is_checked, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.AccountID, items, sale.TotalPrice, sale.TotalCost,
		sale.Date, sale.CustomerName, sale.IsChecked, sale.IsArchived,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, account_id, items, total_price, total_cost, date, customer_name, is_checked, is_archived
		FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// ListByAccount lista las ventas de la cuenta, más recientes primero.
func (r *SaleRepo) ListByAccount(accountID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, account_id, items, total_price, total_cost, date, customer_name, is_checked, is_archived
		FROM sales WHERE account_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza los flags de estado de las ventas indicadas dentro de
// la cuenta. Un puntero nil deja el flag como está (COALESCE).
func (r *SaleRepo) UpdateStatus(accountID string, ids []string, isChecked, isArchived *bool) error {
	query := `
		UPDATE sales SET is_checked = COALESCE($3, is_checked), is_archived = COALESCE($4, is_archived)
		WHERE account_id = $1 AND id = ANY($2)`
	_, err := r.q.Exec(context.Background(), query, accountID, ids, isChecked, isArchived)
	if err != nil {
		return fmt.Errorf("update sales status: %w", err)
	}
	return nil
}

// DeleteByIDs elimina las ventas indicadas dentro de la cuenta.
func (r *SaleRepo) DeleteByIDs(accountID string, ids []string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sales WHERE account_id = $1 AND id = ANY($2)`, accountID, ids)
	if err != nil {
		return fmt.Errorf("delete sales: %w", err)
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var items []byte
	err := row.Scan(&s.ID, &s.AccountID, &items, &s.TotalPrice, &s.TotalCost,
		&s.Date, &s.CustomerName, &s.IsChecked, &s.IsArchived)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal sale items: %w", err)
	}
	return &s, nil
}
