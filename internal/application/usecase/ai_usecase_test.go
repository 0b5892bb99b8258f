package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
	"github.com/stockbit/stockbit-api/internal/domain"
)

type fakeLLM struct {
	identifier string
	inventory  []ports.InsightProduct
	recent     []ports.InsightSaleLine
}

func (f *fakeLLM) IdentifyProduct(_ context.Context, _ string) (string, error) {
	return f.identifier, nil
}

func (f *fakeLLM) ExtractProductDetails(_ context.Context, _ string) (*dto.AIProductDetailsDTO, error) {
	return &dto.AIProductDetailsDTO{Name: "Leche entera 1L", SKU: "7701234567890"}, nil
}

func (f *fakeLLM) InventoryInsights(_ context.Context, inventory []ports.InsightProduct, recent []ports.InsightSaleLine) (string, error) {
	f.inventory = inventory
	f.recent = recent
	return "- Reponer leche", nil
}

func TestAI_SinProveedorConfigurado(t *testing.T) {
	uc := usecase.NewAIUseCase(nil, newFakeProductRepo(), &fakeSaleRepo{}, testLogger())

	assert.False(t, uc.Enabled())
	_, err := uc.IdentifyProduct(context.Background(), "aW1n")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
	_, err = uc.ExtractProductDetails(context.Background(), "aW1n")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
	_, err = uc.InventoryInsights(context.Background(), "acc1")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestAI_IdentifySinResultadoNoEsError(t *testing.T) {
	uc := usecase.NewAIUseCase(&fakeLLM{identifier: ""}, newFakeProductRepo(), &fakeSaleRepo{}, testLogger())

	resp, err := uc.IdentifyProduct(context.Background(), "aW1n")
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Identifier)
}

func TestAI_IdentifyConResultado(t *testing.T) {
	uc := usecase.NewAIUseCase(&fakeLLM{identifier: "7701234567890"}, newFakeProductRepo(), &fakeSaleRepo{}, testLogger())

	resp, err := uc.IdentifyProduct(context.Background(), "aW1n")
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "7701234567890", resp.Identifier)
}

func TestAI_InsightsArmaContextoYLimitaVentas(t *testing.T) {
	products := newFakeProductRepo(producto("p1", "acc1", 3, 5, 100, 60))
	salesRepo := &fakeSaleRepo{}
	// 8 ventas de 3 líneas cada una: 24 líneas, deben recortarse a 20.
	for i := 0; i < 8; i++ {
		sale := venta("acc1", "Ada", 300, 180,
			linea("p1", 1, 100, 60), linea("p1", 2, 100, 60), linea("p1", 3, 100, 60))
		sale.ID = fmt.Sprintf("s-%d", i)
		require.NoError(t, salesRepo.Create(sale))
	}

	llm := &fakeLLM{}
	uc := usecase.NewAIUseCase(llm, products, salesRepo, testLogger())

	resp, err := uc.InventoryInsights(context.Background(), "acc1")
	require.NoError(t, err)
	assert.Equal(t, "- Reponer leche", resp.Insights)

	require.Len(t, llm.inventory, 1)
	assert.Equal(t, "Producto p1", llm.inventory[0].Name)
	assert.Equal(t, 3, llm.inventory[0].Stock)
	assert.Equal(t, "100.00", llm.inventory[0].Price, "el precio viaja formateado a dos decimales")

	assert.Len(t, llm.recent, 20, "el contexto de ventas se recorta")
}
