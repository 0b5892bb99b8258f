package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stockbit/stockbit-api/internal/domain/stock"
)

func TestClassify_TablaDeCasos(t *testing.T) {
	cases := []struct {
		name      string
		qty       int
		threshold int
		want      stock.Status
	}{
		{"igual al umbral es crítico", 5, 5, stock.StatusCritical},
		{"bajo el umbral es crítico", 3, 5, stock.StatusCritical},
		{"cero con umbral cero es crítico", 0, 0, stock.StatusCritical},
		{"uno con umbral cero es saludable", 1, 0, stock.StatusHealthy},
		{"dentro del doble del umbral es warning", 9, 5, stock.StatusWarning},
		{"exactamente el doble del umbral es warning", 10, 5, stock.StatusWarning},
		{"sobre el doble del umbral es saludable", 11, 5, stock.StatusHealthy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.Classify(tc.qty, tc.threshold))
		})
	}
}

// Propiedad: Classify es crítico si y solo si qty <= threshold.
func TestClassify_CriticoSiiBajoUmbral(t *testing.T) {
	for qty := 0; qty <= 30; qty++ {
		for threshold := 0; threshold <= 15; threshold++ {
			got := stock.Classify(qty, threshold)
			if qty <= threshold {
				assert.Equal(t, stock.StatusCritical, got, "qty=%d threshold=%d", qty, threshold)
			} else {
				assert.NotEqual(t, stock.StatusCritical, got, "qty=%d threshold=%d", qty, threshold)
			}
		}
	}
}

func TestExpiryStatus(t *testing.T) {
	today := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := today.AddDate(0, 0, offset)
		return &d
	}

	assert.Equal(t, stock.ExpiryNone, stock.ExpiryStatus(nil, today), "sin fecha nunca hay aviso")
	assert.Equal(t, stock.ExpiryExpired, stock.ExpiryStatus(day(-1), today))
	assert.Equal(t, stock.ExpirySoon, stock.ExpiryStatus(day(0), today), "vence hoy cuenta como próximo")
	assert.Equal(t, stock.ExpirySoon, stock.ExpiryStatus(day(30), today), "borde de la ventana de 30 días")
	assert.Equal(t, stock.ExpiryNone, stock.ExpiryStatus(day(31), today))
}
