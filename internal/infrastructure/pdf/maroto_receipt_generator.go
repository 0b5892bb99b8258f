// Package pdf implementa la generación del recibo de venta imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Recibo + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre (o Guest Customer)                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                               │
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
	"github.com/shopspring/decimal"

	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/pkg/moneyfmt"
)

var _ ports.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 84, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoReceiptGenerator implementa ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el recibo de la venta y devuelve sus bytes.
// El símbolo de moneda viene de Settings.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, sale *entity.Sale, settings *entity.Settings) ([]byte, error) {
	money := moneyfmt.New(settings.Currency, "")

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(settings.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(sale.Items, money) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale.TotalPrice, money))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y N° recibo + fecha (der).
func headerRow(sale *entity.Sale, settings *entity.Settings) core.Row {
	fecha := sale.Date.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(settings.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: nombre del cliente de la venta.
func customerRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.CustomerName, props.Text{Size: 9, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5}
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		col.New(2).Add(text.New("Cant.", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", propsRight(header))),
		col.New(3).Add(text.New("Subtotal", propsRight(header))),
	)
}

func tableItemRows(items []entity.SaleItem, money *moneyfmt.Formatter) []core.Row {
	cell := props.Text{Size: 8, Top: 1.5}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		subtotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), cell)),
			col.New(5).Add(text.New(it.ProductName, cell)),
			col.New(2).Add(text.New(money.Format(it.Price), propsRight(cell))),
			col.New(3).Add(text.New(money.Format(subtotal), propsRight(cell))),
		))
	}
	return rows
}

func totalRow(total decimal.Decimal, money *moneyfmt.Formatter) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(3).Add(text.New(money.Format(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
	)
}

func propsRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}

// shortID devuelve los primeros 8 caracteres del UUID para mostrar en el recibo.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
