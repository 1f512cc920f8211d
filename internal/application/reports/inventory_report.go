// Package reports contiene los casos de uso de reportes descargables.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

// InventoryReportData datos ya agregados que recibe el generador de PDF.
type InventoryReportData struct {
	GeneratedAt   time.Time
	Items         []*entity.Item
	TotalValue    decimal.Decimal
	LowStockItems []*entity.Item
}

// InventoryPDFGenerator puerto de generación del PDF del reporte.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data *InventoryReportData) ([]byte, error)
}

// InventoryReportUseCase genera el reporte de valoración de inventario con la
// sección de artículos bajo el umbral de reposición.
type InventoryReportUseCase struct {
	items     repository.ItemRepository
	generator InventoryPDFGenerator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(items repository.ItemRepository, generator InventoryPDFGenerator) *InventoryReportUseCase {
	return &InventoryReportUseCase{items: items, generator: generator}
}

// GeneratePDF arma los datos del reporte y delega el render al generador.
func (uc *InventoryReportUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}

	data := &InventoryReportData{
		GeneratedAt: time.Now(),
		Items:       items,
		TotalValue:  decimal.Zero,
	}
	for _, item := range items {
		data.TotalValue = data.TotalValue.Add(item.Value())
		if item.LowStock() {
			data.LowStockItems = append(data.LowStockItems, item)
		}
	}
	data.TotalValue = data.TotalValue.Round(2)

	return uc.generator.GenerateInventoryPDF(ctx, data)
}
