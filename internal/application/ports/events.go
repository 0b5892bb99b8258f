package ports

import "context"

// ChangeEvent notifica que una colección de la cuenta cambió. El cliente
// reacciona con un refetch completo de la colección (sin merge incremental).
type ChangeEvent struct {
	Entity string `json:"entity"` // products | sales | suppliers | settings | notifications
	Op     string `json:"op"`     // insert | update | delete
}

// Operaciones de ChangeEvent.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// EventPublisher publica eventos de cambio en el feed de la cuenta.
// El feed es advisory: un fallo de publicación se registra, no aborta la operación.
type EventPublisher interface {
	Publish(ctx context.Context, accountID string, event ChangeEvent) error
}

// EventSubscriber entrega los eventos de cambio de una cuenta.
// close libera la suscripción; el canal se cierra al cancelar el contexto.
type EventSubscriber interface {
	Subscribe(ctx context.Context, accountID string) (events <-chan ChangeEvent, close func(), err error)
}
