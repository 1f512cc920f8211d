package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP de artículos de inventario.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name obligatorio; category vacía se infiere del nombre"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List godoc
// @Summary      Listar artículos con estadísticas
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/inventory/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener un artículo
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Update godoc
// @Summary      Editar un artículo (sin tocar la cantidad)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a editar; quantity no es editable"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar un artículo
// @Description  Rechazado con 409 si el artículo tiene movimientos registrados
//
//	(el libro es la pista de auditoría).
//
// @Tags         inventory
// @Param        id  path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
