package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
)

type productFixture struct {
	products *fakeProductRepo
	settings *fakeSettingsRepo
	notes    *fakeNotificationRepo
	pub      *fakePublisher
	uc       *usecase.ProductUseCase
}

func newProductFixture(products ...*entity.Product) *productFixture {
	f := &productFixture{
		products: newFakeProductRepo(products...),
		settings: newFakeSettingsRepo(),
		notes:    &fakeNotificationRepo{},
		pub:      &fakePublisher{},
	}
	log := testLogger()
	alerter := usecase.NewLowStockAlerter(f.notes, f.settings, nil, log)
	f.uc = usecase.NewProductUseCase(f.products, f.settings, alerter, f.pub, log)
	return f
}

func crearProducto(sku, category string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:         "Lámpara",
		SKU:          sku,
		Category:     category,
		Price:        decimal.NewFromInt(100),
		CostPrice:    decimal.NewFromInt(60),
		Quantity:     10,
		MinThreshold: 2,
	}
}

func TestProduct_CreateDerivaEstado(t *testing.T) {
	f := newProductFixture()

	resp, err := f.uc.Create(context.Background(), "acc1", crearProducto("SKU-1", "Electronics"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "healthy", resp.StockStatus, "10 unidades con mínimo 2")
	assert.Equal(t, "none", resp.ExpiryStatus, "sin fecha de vencimiento")
	require.Len(t, f.pub.events, 1)
	assert.Equal(t, "products", f.pub.events[0].Event.Entity)
}

func TestProduct_CreateSKUDuplicado(t *testing.T) {
	f := newProductFixture()
	_, err := f.uc.Create(context.Background(), "acc1", crearProducto("SKU-1", "Electronics"))
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), "acc1", crearProducto("SKU-1", "Electronics"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_CreateSKURepetidoEnOtraCuentaEsValido(t *testing.T) {
	f := newProductFixture()
	_, err := f.uc.Create(context.Background(), "acc1", crearProducto("SKU-1", "Electronics"))
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), "acc2", crearProducto("SKU-1", "Electronics"))
	assert.NoError(t, err, "la unicidad del SKU es por cuenta")
}

func TestProduct_CreateCategoriaFueraDelVocabulario(t *testing.T) {
	f := newProductFixture()
	require.NoError(t, f.settings.Upsert(entity.DefaultSettings("acc1")))

	_, err := f.uc.Create(context.Background(), "acc1", crearProducto("SKU-1", "Inventada"))
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = f.uc.Create(context.Background(), "acc1", crearProducto("SKU-1", "Electronics"))
	assert.NoError(t, err)
}

func TestProduct_CreatePrecioNegativo(t *testing.T) {
	f := newProductFixture()
	in := crearProducto("SKU-1", "Electronics")
	in.Price = decimal.NewFromInt(-5)

	_, err := f.uc.Create(context.Background(), "acc1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_GetByIDEscopaPorCuenta(t *testing.T) {
	f := newProductFixture(producto("p1", "acc2", 10, 0, 100, 60))

	resp, err := f.uc.GetByID("acc1", "p1")
	require.NoError(t, err)
	assert.Nil(t, resp, "un producto ajeno se reporta como inexistente")
}

func TestProduct_UpdateParcialYAlertaAlBajarStock(t *testing.T) {
	f := newProductFixture(producto("p1", "acc1", 10, 4, 100, 60))

	qty := 3
	resp, err := f.uc.Update(context.Background(), "acc1", "p1", dto.UpdateProductRequest{Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Quantity)
	assert.Equal(t, "critical", resp.StockStatus)
	assert.Equal(t, "Producto p1", resp.Name, "los campos no enviados quedan intactos")

	notes, _ := f.notes.ListByAccount("acc1")
	require.Len(t, notes, 1, "bajar a 3 con mínimo 4 dispara la alerta")
	assert.Equal(t, entity.NotificationLowStock, notes[0].Type)
}

func TestProduct_UpdateCambioDeSKUDuplicado(t *testing.T) {
	f := newProductFixture(
		producto("p1", "acc1", 10, 0, 100, 60),
		producto("p2", "acc1", 5, 0, 50, 20),
	)

	sku := "SKU-p2"
	_, err := f.uc.Update(context.Background(), "acc1", "p1", dto.UpdateProductRequest{SKU: &sku})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_DeleteAjenoEsNotFound(t *testing.T) {
	f := newProductFixture(producto("p1", "acc2", 10, 0, 100, 60))

	err := f.uc.Delete(context.Background(), "acc1", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, _ := f.products.GetByID("p1")
	assert.NotNil(t, p, "el producto de la otra cuenta sigue ahí")
}
