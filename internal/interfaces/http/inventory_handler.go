package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/application/inventory"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

// movementTimeout límite de espera de un movimiento (incluye la espera del
// bloqueo de fila si hay otro movimiento en vuelo sobre el mismo artículo).
const movementTimeout = 5 * time.Second

// InventoryHandler maneja las peticiones HTTP del libro de movimientos de stock.
type InventoryHandler struct {
	ledger *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, quantity > 0, direction in|out, notes opcional"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), movementTimeout)
	defer cancel()

	result, err := h.ledger.RegisterMovement(ctx, inventory.MovementInput{
		ItemID:    in.ItemID,
		Quantity:  in.Quantity,
		Direction: in.Direction,
		Notes:     in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement:    *toMovementResponse(result.Movement),
		NewQuantity: result.NewQuantity,
	})
}

// ListMovements godoc
// @Summary      Libro de movimientos de un artículo
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	itemID := c.Params("id")
	movements, err := h.ledger.ListMovements(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.MovementListResponse{
		ItemID:    itemID,
		Movements: make([]dto.MovementResponse, 0, len(movements)),
	}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, *toMovementResponse(m))
	}
	return c.JSON(resp)
}

// GetQuantity godoc
// @Summary      Cantidad actual de un artículo
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/quantity [get]
func (h *InventoryHandler) GetQuantity(c *fiber.Ctx) error {
	quantity, err := h.ledger.CurrentQuantity(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"item_id": c.Params("id"), "quantity": quantity})
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Quantity:  m.Quantity,
		Direction: m.Direction,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}
