package usecase

import (
	"context"

	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// publishChange publica el evento de cambio en el feed de la cuenta.
// El feed es advisory: un fallo se registra y la operación sigue adelante.
func publishChange(ctx context.Context, events ports.EventPublisher, log *logger.Logger, accountID, entityName, op string) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, accountID, ports.ChangeEvent{Entity: entityName, Op: op}); err != nil {
		log.Warn().Err(err).
			Str("account_id", accountID).
			Str("entity", entityName).
			Msg("publicar evento de cambio")
	}
}
