// Package stock implementa la clasificación de estado de inventario
// (servicio de dominio, funciones puras sin efectos).
package stock

import "time"

// Status es el nivel de salud de stock de un producto.
type Status string

const (
	StatusCritical Status = "critical" // quantity <= minThreshold
	StatusWarning  Status = "warning"  // minThreshold < quantity <= 2*minThreshold
	StatusHealthy  Status = "healthy"
)

// ExpiryFlag indica la proximidad del vencimiento de un lote.
type ExpiryFlag string

const (
	ExpiryExpired ExpiryFlag = "expired"      // expiryDate < hoy
	ExpirySoon    ExpiryFlag = "expires_soon" // vence dentro de la ventana
	ExpiryNone    ExpiryFlag = "none"
)

// expiryWindowDays es la ventana de aviso de vencimiento próximo.
const expiryWindowDays = 30

// Classify deriva el estado de stock de tres niveles a partir de la cantidad
// viva y el umbral mínimo. Total sobre los enteros no negativos: con
// minThreshold = 0 solo quantity == 0 es crítico.
func Classify(quantity, minThreshold int) Status {
	switch {
	case quantity <= minThreshold:
		return StatusCritical
	case quantity <= 2*minThreshold:
		return StatusWarning
	default:
		return StatusHealthy
	}
}

// ExpiryStatus deriva la proximidad de vencimiento respecto a today.
// expiryDate nil siempre devuelve ExpiryNone. Se comparan días calendario,
// no instantes: un producto que vence hoy cuenta como ExpirySoon.
func ExpiryStatus(expiryDate *time.Time, today time.Time) ExpiryFlag {
	if expiryDate == nil {
		return ExpiryNone
	}
	d := truncateDay(*expiryDate)
	t := truncateDay(today)
	if d.Before(t) {
		return ExpiryExpired
	}
	days := int(d.Sub(t).Hours() / 24)
	if days <= expiryWindowDays {
		return ExpirySoon
	}
	return ExpiryNone
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
