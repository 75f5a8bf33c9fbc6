// Package pdf genera el informe de stock en PDF para impresión o respaldo
// de inventario físico.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comercio  │  Bodega (o "Todas") + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Disponible | Cantidad  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL UNIDADES                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// StockReportGenerator genera el informe de stock usando Maroto v2.
type StockReportGenerator struct{}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes. warehouseName vacío
// indica informe agregado de todas las bodegas.
func (g *StockReportGenerator) GenerateStockReport(
	_ context.Context,
	commerceName, warehouseName string,
	items []entity.ProductStock,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Stock", true).
		WithAuthor(commerceName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(commerceName, warehouseName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	var total int64
	for _, it := range items {
		m.AddRows(itemRow(it))
		total += it.Quantity
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total, len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: comercio (izq) y alcance + fecha de emisión (der).
func headerRow(commerceName, warehouseName string) core.Row {
	alcance := "Todas las bodegas"
	if warehouseName != "" {
		alcance = "Bodega: " + warehouseName
	}
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(commerceName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Informe de Stock", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(alcance, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Disp.", 1, align.Center),
		h("Cantidad", 2, align.Right),
	)
}

// itemRow: una fila por producto con su cantidad anotada.
func itemRow(it entity.ProductStock) core.Row {
	disp := "Sí"
	if !it.Product.Available {
		disp = "No"
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(it.Product.SKU, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New(it.Product.Name, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(it.CategoryName, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
		})),
		col.New(1).Add(text.New(disp, props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// totalRow: total de unidades y de productos listados.
func totalRow(totalUnits int64, productCount int) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New(
			fmt.Sprintf("%d productos listados", productCount),
			props.Text{Size: 8, Top: 3, Color: colorGray},
		)),
		col.New(5).Add(text.New(
			fmt.Sprintf("TOTAL UNIDADES: %d", totalUnits),
			props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			},
		)),
	)
}
