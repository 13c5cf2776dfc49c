// Package pdf genera la remisión de entrega de un lote usando Maroto v2:
// encabezado con empresa y lote, resumen de producción y costos, y el
// historial de movimientos planta -> tránsito -> obra.
package pdf

import (
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

	"github.com/psunilk13/rmc-doctypes/internal/application/production"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoDocketGenerator implementa production.DocketGenerator usando Maroto v2.
type MarotoDocketGenerator struct{}

// NewMarotoDocketGenerator construye el generador.
func NewMarotoDocketGenerator() *MarotoDocketGenerator { return &MarotoDocketGenerator{} }

var _ production.DocketGenerator = (*MarotoDocketGenerator)(nil)

// Generate genera el PDF de la remisión y devuelve sus bytes.
func (g *MarotoDocketGenerator) Generate(data production.DocketData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Remisión de Entrega RMC", true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(movementHeaderRow())
	for _, mov := range data.Movements {
		m.AddRows(movementRow(mov))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar remisión: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y número de lote + fecha (der).
func headerRow(data production.DocketData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Remisión de entrega de concreto premezclado", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LOTE "+data.BatchID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Fecha de producción: "+data.ProductionDate, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// summaryRows: grado, cantidad y costos.
func summaryRows(data production.DocketData) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(4).Add(text.New("Grado: "+data.Grade, props.Text{Size: 9, Top: 2})),
			col.New(4).Add(text.New("Cantidad: "+data.Quantity.String()+" m³", props.Text{Size: 9, Top: 2})),
			col.New(4).Add(text.New("Costo unitario: "+data.PerUnitCost.StringFixed(2), props.Text{Size: 9, Top: 2, Align: align.Right})),
		),
		row.New(8).Add(
			col.New(4).Add(text.New("Planta origen: "+data.SourceWarehouse, props.Text{Size: 9, Top: 2})),
			col.New(4).Add(text.New("Destino: "+data.DestinationWarehouse, props.Text{Size: 9, Top: 2})),
			col.New(4).Add(text.New("Costo total: "+data.TotalCost.StringFixed(2), props.Text{
				Size: 9, Top: 2, Align: align.Right, Style: fontstyle.Bold,
			})),
		),
	}
}

func movementHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}
	return row.New(8).Add(
		col.New(4).Add(text.New("Movimiento", header)),
		col.New(3).Add(text.New("Origen", header)),
		col.New(3).Add(text.New("Destino", header)),
		col.New(2).Add(text.New("Fecha", header)),
	)
}

func movementRow(mov production.DocketMovement) core.Row {
	cell := props.Text{Size: 8, Top: 1, Color: colorGray}
	return row.New(6).Add(
		col.New(4).Add(text.New(mov.Type, cell)),
		col.New(3).Add(text.New(nonEmpty(mov.From, "—"), cell)),
		col.New(3).Add(text.New(nonEmpty(mov.To, "—"), cell)),
		col.New(2).Add(text.New(mov.Date, cell)),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
