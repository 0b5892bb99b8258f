package redisfeed_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/infrastructure/redisfeed"
)

func newTestFeed(t *testing.T) *redisfeed.Feed {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisfeed.New(client)
}

func recibir(t *testing.T, events <-chan ports.ChangeEvent) ports.ChangeEvent {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "el canal se cerró antes de entregar el evento")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timeout esperando evento")
		return ports.ChangeEvent{}
	}
}

func TestFeed_PublishLlegaAlSuscriptor(t *testing.T) {
	feed := newTestFeed(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, closeFn, err := feed.Subscribe(ctx, "acc1")
	require.NoError(t, err)
	defer closeFn()

	want := ports.ChangeEvent{Entity: "products", Op: ports.OpUpdate}
	require.NoError(t, feed.Publish(ctx, "acc1", want))

	assert.Equal(t, want, recibir(t, events))
}

func TestFeed_CanalesPorCuentaAislados(t *testing.T) {
	feed := newTestFeed(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, closeFn, err := feed.Subscribe(ctx, "acc1")
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, feed.Publish(ctx, "acc2", ports.ChangeEvent{Entity: "sales", Op: ports.OpInsert}))
	require.NoError(t, feed.Publish(ctx, "acc1", ports.ChangeEvent{Entity: "settings", Op: ports.OpUpdate}))

	// El primer evento que llega debe ser el de acc1: el de acc2 nunca entra al canal.
	got := recibir(t, events)
	assert.Equal(t, "settings", got.Entity)
}

func TestFeed_CancelarContextoCierraElCanal(t *testing.T) {
	feed := newTestFeed(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, closeFn, err := feed.Subscribe(ctx, "acc1")
	require.NoError(t, err)
	defer closeFn()

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "el canal debe cerrarse al cancelar el contexto")
	case <-time.After(2 * time.Second):
		t.Fatal("el canal no se cerró tras cancelar el contexto")
	}
}
