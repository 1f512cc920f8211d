package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/gastro-ops/internal/application/reports"
)

// ReportHandler maneja la descarga de reportes en PDF.
type ReportHandler struct {
	inventoryReport *reports.InventoryReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(inventoryReport *reports.InventoryReportUseCase) *ReportHandler {
	return &ReportHandler{inventoryReport: inventoryReport}
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Description  Valoración del inventario y artículos bajo el umbral de reposición.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/report/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	doc, err := h.inventoryReport.GeneratePDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(doc)
}
