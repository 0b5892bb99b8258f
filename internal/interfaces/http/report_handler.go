package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
)

// ReportHandler maneja el reporte de la cuenta (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte de la cuenta (rollups recalculados bajo demanda)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Build(GetAccountID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
