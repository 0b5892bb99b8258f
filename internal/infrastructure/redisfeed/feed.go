// Package redisfeed implementa el feed de cambios por cuenta sobre Redis
// pub/sub. Cada cuenta tiene su canal (sync:<accountID>); los eventos son
// efímeros: un suscriptor desconectado no recibe lo que se publicó mientras
// no estaba, y el cliente compensa con un refetch al reconectar.
package redisfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/pkg/config"
)

var (
	_ ports.EventPublisher  = (*Feed)(nil)
	_ ports.EventSubscriber = (*Feed)(nil)
)

// NewClient crea el cliente Redis y verifica conectividad.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redisfeed: ping: %w", err)
	}
	return client, nil
}

// Feed publica y suscribe eventos de cambio vía Redis pub/sub.
type Feed struct {
	client *redis.Client
}

// New construye el feed sobre un cliente existente.
func New(client *redis.Client) *Feed {
	return &Feed{client: client}
}

func channel(accountID string) string {
	return "sync:" + accountID
}

// Publish publica el evento en el canal de la cuenta.
func (f *Feed) Publish(ctx context.Context, accountID string, event ports.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redisfeed: marshal event: %w", err)
	}
	if err := f.client.Publish(ctx, channel(accountID), payload).Err(); err != nil {
		return fmt.Errorf("redisfeed: publish: %w", err)
	}
	return nil
}

// Subscribe abre una suscripción al canal de la cuenta. El canal devuelto se
// cierra al cancelar ctx o al llamar close. Los mensajes malformados se
// descartan en silencio.
func (f *Feed) Subscribe(ctx context.Context, accountID string) (<-chan ports.ChangeEvent, func(), error) {
	sub := f.client.Subscribe(ctx, channel(accountID))
	// Forzar el handshake de suscripción antes de devolver el canal.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("redisfeed: subscribe: %w", err)
	}

	out := make(chan ports.ChangeEvent)
	go func() {
		defer close(out)
		in := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				var event ports.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	closeFn := func() { _ = sub.Close() }
	return out, closeFn, nil
}
