package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func producto(id, accountID string, qty, threshold int, price, cost float64) *entity.Product {
	return &entity.Product{
		ID:           id,
		AccountID:    accountID,
		Name:         "Producto " + id,
		SKU:          "SKU-" + id,
		Price:        decimal.NewFromFloat(price),
		CostPrice:    decimal.NewFromFloat(cost),
		Quantity:     qty,
		MinThreshold: threshold,
	}
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

func cloneSale(s *entity.Sale) *entity.Sale {
	cs := *s
	cs.Items = append([]entity.SaleItem(nil), s.Items...)
	return &cs
}

// fakeProductRepo repositorio en memoria. lockQty permite simular que el
// stock cambió entre el armado del carrito y el lock de la transacción;
// setQtyErr inyecta fallos en SetQuantity por producto.
type fakeProductRepo struct {
	order     []string
	products  map[string]*entity.Product
	lockQty   map[string]int
	setQtyErr map[string]error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products:  make(map[string]*entity.Product),
		lockQty:   make(map[string]int),
		setQtyErr: make(map[string]error),
	}
	for _, p := range products {
		r.order = append(r.order, p.ID)
		r.products[p.ID] = cloneProduct(p)
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.order = append(r.order, p.ID)
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	p, err := r.GetByID(id)
	if p == nil || err != nil {
		return p, err
	}
	if qty, ok := r.lockQty[id]; ok {
		p.Quantity = qty
	}
	return p, nil
}

func (r *fakeProductRepo) GetByAccountAndSKU(accountID, sku string) (*entity.Product, error) {
	for _, id := range r.order {
		p := r.products[id]
		if p.AccountID == accountID && p.SKU == sku {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListByAccount(accountID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		if p := r.products[id]; p.AccountID == accountID {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) SetQuantity(productID string, quantity int) error {
	if err := r.setQtyErr[productID]; err != nil {
		return err
	}
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeProductRepo) snapshot() map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(r.products))
	for id, p := range r.products {
		snap[id] = cloneProduct(p)
	}
	return snap
}

func (r *fakeProductRepo) restore(snap map[string]*entity.Product) {
	r.products = snap
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales = append(r.sales, cloneSale(s))
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return cloneSale(s), nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) ListByAccount(accountID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.AccountID == accountID {
			out = append(out, cloneSale(s))
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateStatus(accountID string, ids []string, isChecked, isArchived *bool) error {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	for _, s := range r.sales {
		if s.AccountID != accountID || !wanted[s.ID] {
			continue
		}
		if isChecked != nil {
			s.IsChecked = *isChecked
		}
		if isArchived != nil {
			s.IsArchived = *isArchived
		}
	}
	return nil
}

func (r *fakeSaleRepo) DeleteByIDs(accountID string, ids []string) error {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var kept []*entity.Sale
	for _, s := range r.sales {
		if s.AccountID == accountID && wanted[s.ID] {
			continue
		}
		kept = append(kept, s)
	}
	r.sales = kept
	return nil
}

func (r *fakeSaleRepo) snapshot() []*entity.Sale {
	snap := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		snap = append(snap, cloneSale(s))
	}
	return snap
}

func (r *fakeSaleRepo) restore(snap []*entity.Sale) {
	r.sales = snap
}

// fakeTxRunner emula la semántica todo-o-nada: toma un snapshot antes de fn
// y lo restaura si fn devuelve error.
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func (t *fakeTxRunner) WithinTx(_ context.Context, fn func(r ports.TxRepos) error) error {
	productsSnap := t.products.snapshot()
	salesSnap := t.sales.snapshot()
	err := fn(ports.TxRepos{Products: t.products, Sales: t.sales})
	if err != nil {
		t.products.restore(productsSnap)
		t.sales.restore(salesSnap)
	}
	return err
}

type fakeNotificationRepo struct {
	notes []*entity.Notification
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	r.notes = append(r.notes, &cp)
	return nil
}

func (r *fakeNotificationRepo) ListByAccount(accountID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notes {
		if n.AccountID == accountID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(accountID, id string) error {
	for _, n := range r.notes {
		if n.AccountID == accountID && n.ID == id {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeNotificationRepo) DeleteByAccount(accountID string) error {
	var kept []*entity.Notification
	for _, n := range r.notes {
		if n.AccountID != accountID {
			kept = append(kept, n)
		}
	}
	r.notes = kept
	return nil
}

type fakeSettingsRepo struct {
	byAccount map[string]*entity.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byAccount: make(map[string]*entity.Settings)}
}

func cloneSettings(s *entity.Settings) *entity.Settings {
	cp := *s
	cp.Categories = append([]string(nil), s.Categories...)
	return &cp
}

func (r *fakeSettingsRepo) GetByAccount(accountID string) (*entity.Settings, error) {
	s, ok := r.byAccount[accountID]
	if !ok {
		return nil, nil
	}
	return cloneSettings(s), nil
}

func (r *fakeSettingsRepo) Upsert(s *entity.Settings) error {
	r.byAccount[s.AccountID] = cloneSettings(s)
	return nil
}

type publishedEvent struct {
	AccountID string
	Event     ports.ChangeEvent
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, accountID string, event ports.ChangeEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{AccountID: accountID, Event: event})
	return nil
}
