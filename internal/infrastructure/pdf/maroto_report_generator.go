// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio │ Fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Cat. | Cant. | Unidad | Costo | Valor     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor del inventario                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  REPOSICIÓN: artículos en o bajo el umbral mínimo            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jcastro/gastro-ops/internal/application/reports"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	businessName string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{businessName: businessName}
}

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, data *reports.InventoryReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(data.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data))

	if len(data.LowStockItems) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range lowStockRows(data.LowStockItems) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y fecha de generación (der).
func headerRow(businessName string, data *reports.InventoryReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Artículos: %d", len(data.Items)), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Unidad", 1, align.Center),
		h("Costo unit.", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// tableItemRows: una fila por artículo; cantidad en rojo si está bajo el umbral.
func tableItemRows(items []*entity.Item) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		qtyColor := colorGray
		if item.LowStock() {
			qtyColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(item.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(item.Category, props.Text{
				Size: 7, Align: align.Left, Top: 1, Color: colorGray,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: qtyColor,
			})),
			col.New(1).Add(text.New(item.Unit, props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(item.CostPerUnit.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(item.Value().StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalRow: valor total del inventario alineado a la derecha.
func totalRow(data *reports.InventoryReportData) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New("VALOR TOTAL DEL INVENTARIO", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(data.TotalValue.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// lowStockRows: sección de artículos por reponer.
func lowStockRows(items []*entity.Item) []core.Row {
	result := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("ARTÍCULOS POR REPONER", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorAlert, Top: 2,
		}))),
	}
	for _, item := range items {
		result = append(result, row.New(6).Add(
			col.New(8).Add(text.New(item.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1,
			})),
			col.New(4).Add(text.New(
				fmt.Sprintf("%d / mínimo %d %s", item.Quantity, item.MinimumQuantity, item.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGray},
			)),
		))
	}
	return result
}
