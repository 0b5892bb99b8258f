package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/pkg/validation"
)

// StocktakeHandler maneja la reconciliación de conteo físico (protegido).
type StocktakeHandler struct {
	uc *usecase.StocktakeUseCase
}

// NewStocktakeHandler construye el handler.
func NewStocktakeHandler(uc *usecase.StocktakeUseCase) *StocktakeHandler {
	return &StocktakeHandler{uc: uc}
}

// Reconcile godoc
// @Summary      Reconciliar conteo físico contra el sistema
// @Description  Aplica ajustes absolutos por producto descuadrado. Los ajustes son independientes: el reporte distingue aplicados y fallidos.
// @Tags         stocktake
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "Conteo físico"
// @Success      200   {object}  dto.ReconcileReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stocktake/reconcile [post]
func (h *StocktakeHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Reconcile(c.UserContext(), GetAccountID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidades físicas negativas no permitidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
