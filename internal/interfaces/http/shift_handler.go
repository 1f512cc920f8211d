package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/application/usecase"
)

// ShiftHandler maneja las peticiones HTTP de turnos.
type ShiftHandler struct {
	uc *usecase.ShiftUseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *usecase.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Create godoc
// @Summary      Crear turno
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShiftRequest  true  "employee_id, start_time y end_time obligatorios"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shifts [post]
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shift, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shift)
}

// List godoc
// @Summary      Listar turnos (orden por inicio ascendente)
// @Tags         shifts
// @Produce      json
// @Success      200  {array}  dto.ShiftResponse
// @Router       /api/shifts [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener un turno
// @Tags         shifts
// @Produce      json
// @Param        id  path  string  true  "ID del turno"
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [get]
func (h *ShiftHandler) GetByID(c *fiber.Ctx) error {
	shift, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shift)
}

// Update godoc
// @Summary      Editar un turno
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del turno"
// @Param        body  body  dto.UpdateShiftRequest  true  "campos a editar"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [put]
func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shift, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shift)
}

// Delete godoc
// @Summary      Eliminar un turno
// @Tags         shifts
// @Param        id  path  string  true  "ID del turno"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
