package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/pkg/validation"
)

// AIHandler maneja las operaciones asistidas por IA (protegido).
// Los fallos del modelo se devuelven como 502 sin taxonomía: el cliente los
// trata como "sin resultado" y ofrece reintento manual.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Identify godoc
// @Summary      Identificar producto a partir de una imagen
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AIImageRequest  true  "Imagen JPEG en base64"
// @Success      200   {object}  dto.AIIdentifyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/identify [post]
func (h *AIHandler) Identify(c *fiber.Ctx) error {
	var in dto.AIImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.IdentifyProduct(c.UserContext(), in.ImageBase64)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(out)
}

// Extract godoc
// @Summary      Extraer ficha estructurada de una etiqueta de producto
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AIImageRequest  true  "Imagen JPEG en base64"
// @Success      200   {object}  dto.AIProductDetailsDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/extract [post]
func (h *AIHandler) Extract(c *fiber.Ctx) error {
	var in dto.AIImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ExtractProductDetails(c.UserContext(), in.ImageBase64)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(out)
}

// Insights godoc
// @Summary      Generar insights de inventario y ventas recientes
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AIInsightsResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ai/insights [get]
func (h *AIHandler) Insights(c *fiber.Ctx) error {
	out, err := h.uc.InventoryInsights(c.UserContext(), GetAccountID(c))
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(out)
}

func aiError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrAIUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_DISABLED", Message: "servicio de IA no configurado"})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
}
