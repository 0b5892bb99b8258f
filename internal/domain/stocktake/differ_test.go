package stocktake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbit/stockbit-api/internal/domain/stocktake"
)

func TestItem_DeltaYClasificacion(t *testing.T) {
	matched := stocktake.Item{ProductID: "p1", SystemQty: 10, PhysicalQty: 10}
	shortage := stocktake.Item{ProductID: "p2", SystemQty: 8, PhysicalQty: 5}
	surplus := stocktake.Item{ProductID: "p3", SystemQty: 2, PhysicalQty: 6}

	assert.Equal(t, 0, matched.Delta())
	assert.Equal(t, stocktake.Matched, matched.Classify())
	assert.Equal(t, -3, shortage.Delta())
	assert.Equal(t, stocktake.NeedsAdjustment, shortage.Classify())
	assert.Equal(t, 4, surplus.Delta())
	assert.Equal(t, stocktake.NeedsAdjustment, surplus.Classify())
}

// Escenario del conteo mixto: un cuadrado y un faltante → health 50%.
func TestSummarize_ConteoMixto(t *testing.T) {
	items := []stocktake.Item{
		{ProductID: "p1", SystemQty: 10, PhysicalQty: 10},
		{ProductID: "p2", SystemQty: 8, PhysicalQty: 5},
	}

	s := stocktake.Summarize(items)
	assert.Equal(t, 2, s.TotalItems)
	assert.Equal(t, 1, s.MismatchCount)
	assert.InDelta(t, 50.0, s.HealthPercent, 0.001)

	plan := stocktake.Plan(items)
	require.Len(t, plan, 1, "solo el descuadre genera instrucción")
	assert.Equal(t, "p2", plan[0].ProductID)
	assert.Equal(t, 5, plan[0].SetQuantity, "fija cantidad absoluta, no aplica delta")
	assert.Equal(t, -3, plan[0].Delta)
}

func TestSummarize_ConteoVacioEs100(t *testing.T) {
	s := stocktake.Summarize(nil)
	assert.Equal(t, 0, s.TotalItems)
	assert.InDelta(t, 100.0, s.HealthPercent, 0.001)
}

// Propiedad de idempotencia: tras aplicar el ajuste (quantity = physicalQty),
// un nuevo conteo con el mismo physicalQty queda cuadrado y no genera plan.
func TestPlan_Idempotente(t *testing.T) {
	items := []stocktake.Item{
		{ProductID: "p1", SystemQty: 8, PhysicalQty: 5},
		{ProductID: "p2", SystemQty: 3, PhysicalQty: 9},
	}
	plan := stocktake.Plan(items)
	require.Len(t, plan, 2)

	// Simular la aplicación: systemQty pasa a ser el valor fijado.
	second := make([]stocktake.Item, len(items))
	for i, it := range items {
		second[i] = stocktake.Item{ProductID: it.ProductID, SystemQty: it.PhysicalQty, PhysicalQty: it.PhysicalQty}
	}

	assert.Empty(t, stocktake.Plan(second))
	assert.Equal(t, 0, stocktake.Summarize(second).MismatchCount)
}
