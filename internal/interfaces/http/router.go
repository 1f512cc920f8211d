package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/gastro-ops/internal/application/inventory"
	"github.com/jcastro/gastro-ops/internal/application/reports"
	"github.com/jcastro/gastro-ops/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger          *inventory.LedgerUseCase
	ItemUC          *usecase.ItemUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	ShiftUC         *usecase.ShiftUseCase
	SaleUC          *usecase.SaleUseCase
	InventoryReport *reports.InventoryReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario: artículos y libro de movimientos
	inv := api.Group("/inventory")
	itemHandler := NewItemHandler(deps.ItemUC)
	inv.Post("/items", itemHandler.Create)
	inv.Get("/items", itemHandler.List)
	inv.Get("/items/:id", itemHandler.GetByID)
	inv.Put("/items/:id", itemHandler.Update)
	inv.Delete("/items/:id", itemHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.Ledger)
	inv.Post("/movements", inventoryHandler.RegisterMovement)
	inv.Get("/items/:id/movements", inventoryHandler.ListMovements)
	inv.Get("/items/:id/quantity", inventoryHandler.GetQuantity)

	reportHandler := NewReportHandler(deps.InventoryReport)
	inv.Get("/report/pdf", reportHandler.InventoryPDF)

	// Empleados
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Turnos
	shifts := api.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Post("/", shiftHandler.Create)
	shifts.Get("/", shiftHandler.List)
	shifts.Get("/:id", shiftHandler.GetByID)
	shifts.Put("/:id", shiftHandler.Update)
	shifts.Delete("/:id", shiftHandler.Delete)

	// Ventas
	sales := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SaleUC)
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)
	sales.Get("/summary", salesHandler.GetSummary)
}
