package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// keepAliveInterval separación de los comentarios SSE que mantienen viva la
// conexión a través de proxies.
const keepAliveInterval = 25 * time.Second

// SyncHandler expone el feed de cambios de la cuenta como stream SSE
// (protegido). Los eventos son efímeros: la semántica es "algo cambió,
// vuelve a pedir la colección", no un log replicable.
type SyncHandler struct {
	subscriber ports.EventSubscriber
	log        *logger.Logger
}

// NewSyncHandler construye el handler. subscriber nil deshabilita el stream.
func NewSyncHandler(subscriber ports.EventSubscriber, log *logger.Logger) *SyncHandler {
	return &SyncHandler{subscriber: subscriber, log: log}
}

// Stream godoc
// @Summary      Stream SSE de eventos de cambio de la cuenta
// @Tags         sync
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200  {string}  string  "event: change\ndata: {\"entity\":\"products\",\"op\":\"update\"}"
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sync/stream [get]
func (h *SyncHandler) Stream(c *fiber.Ctx) error {
	if h.subscriber == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SYNC_DISABLED", Message: "feed de sincronización no configurado"})
	}
	accountID := GetAccountID(c)

	// El contexto de fiber no sobrevive al streaming: usar uno propio ligado
	// al cierre de la conexión.
	ctx, cancel := context.WithCancel(context.Background())
	events, closeSub, err := h.subscriber.Subscribe(ctx, accountID)
	if err != nil {
		cancel()
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SYNC_UNAVAILABLE", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	log := h.log
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		defer closeSub()

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				payload, err := json.Marshal(event)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					// Cliente desconectado.
					log.Debug().Str("account_id", accountID).Msg("stream SSE cerrado")
					return
				}
			case <-keepAlive.C:
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}
