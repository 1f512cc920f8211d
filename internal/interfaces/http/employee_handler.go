package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP de empleados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "name y email obligatorios"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener un empleado
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Update godoc
// @Summary      Editar un empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "campos a editar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Delete godoc
// @Summary      Eliminar un empleado
// @Tags         employees
// @Param        id  path  string  true  "ID del empleado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
