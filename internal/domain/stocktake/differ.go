// Package stocktake implementa el diff de conteo físico contra el sistema
// (servicio de dominio, funciones puras).
package stocktake

// Classification es el resultado del diff de un ítem.
type Classification string

const (
	Matched         Classification = "matched"
	NeedsAdjustment Classification = "needs_adjustment"
)

// Item es la entrada transitoria de un conteo: cantidad del sistema al momento
// del conteo y cantidad física contada. No tiene ciclo de vida propio.
type Item struct {
	ProductID   string
	SystemQty   int
	PhysicalQty int
}

// Delta devuelve physicalQty - systemQty (positivo = sobrante, negativo = faltante).
func (it Item) Delta() int {
	return it.PhysicalQty - it.SystemQty
}

// Classify clasifica el ítem según su delta.
func (it Item) Classify() Classification {
	if it.Delta() == 0 {
		return Matched
	}
	return NeedsAdjustment
}

// Adjustment es la instrucción de corrección de un ítem descuadrado: fijar la
// cantidad del producto en SetQuantity (valor absoluto, no delta aditivo, para
// que aplicarla dos veces no duplique el ajuste).
type Adjustment struct {
	ProductID   string
	SetQuantity int
	Delta       int
}

// Plan produce el conjunto de ajustes de un conteo: una instrucción por ítem
// con delta distinto de cero. Los ítems cuadrados no generan escritura.
func Plan(items []Item) []Adjustment {
	var out []Adjustment
	for _, it := range items {
		if it.Delta() == 0 {
			continue
		}
		out = append(out, Adjustment{
			ProductID:   it.ProductID,
			SetQuantity: it.PhysicalQty,
			Delta:       it.Delta(),
		})
	}
	return out
}

// Summary es el resumen agregado de un conteo.
type Summary struct {
	TotalItems    int
	MismatchCount int
	HealthPercent float64 // (total - descuadres) / total * 100; 100 con cero ítems
}

// Summarize calcula el resumen del conteo.
func Summarize(items []Item) Summary {
	s := Summary{TotalItems: len(items)}
	for _, it := range items {
		if it.Delta() != 0 {
			s.MismatchCount++
		}
	}
	if s.TotalItems == 0 {
		s.HealthPercent = 100
		return s
	}
	s.HealthPercent = float64(s.TotalItems-s.MismatchCount) / float64(s.TotalItems) * 100
	return s
}
