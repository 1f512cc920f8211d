package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/application/usecase"
)

// SalesHandler maneja las peticiones HTTP de ventas y su resumen.
type SalesHandler struct {
	uc *usecase.SaleUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *usecase.SaleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "amount > 0 y date (YYYY-MM-DD) obligatorios"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List godoc
// @Summary      Listar ventas recientes
// @Tags         sales
// @Produce      json
// @Param        limit   query  int  false  "máx. resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetSummary godoc
// @Summary      Resumen de ventas (hoy vs. ayer, semana vs. semana anterior)
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sales/summary [get]
func (h *SalesHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
