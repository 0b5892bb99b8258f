package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
)

// NotificationHandler maneja las notificaciones in-app (protegido).
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones de la cuenta
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetAccountID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar notificación como leída (idempotente)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.MarkRead(GetAccountID(c), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "notificación leída"})
}

// ClearAll godoc
// @Summary      Eliminar todas las notificaciones de la cuenta
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/notifications [delete]
func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.uc.ClearAll(GetAccountID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "notificaciones eliminadas"})
}
