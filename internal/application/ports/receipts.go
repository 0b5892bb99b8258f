package ports

import (
	"context"

	"github.com/stockbit/stockbit-api/internal/domain/entity"
)

// ReceiptPDFGenerator genera el recibo de venta imprimible.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, settings *entity.Settings) ([]byte, error)
}
