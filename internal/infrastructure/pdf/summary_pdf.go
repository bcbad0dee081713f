// Package pdf genera la versión imprimible del reporte "Summary & Reports":
// totales agregados más la tabla de deuda por cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación       │
//	│  ─────────────────────────────────────────  │
//	│  TOTALES: Total Due  |  Total Customers     │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Cliente | Teléfono | Deuda          │
//	└─────────────────────────────────────────────┘
package pdf

import (
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
	"github.com/shopspring/decimal"

	"github.com/mdmehedi135712-tech/account-books/internal/application/ledger"
	"github.com/mdmehedi135712-tech/account-books/internal/application/reminder"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorDue     = &props.Color{Red: 190, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// SummaryPDFGenerator genera el reporte de deudas usando Maroto v2.
type SummaryPDFGenerator struct{}

// NewSummaryPDFGenerator construye el generador.
func NewSummaryPDFGenerator() *SummaryPDFGenerator { return &SummaryPDFGenerator{} }

// GenerateSummaryPDF genera el PDF del reporte y devuelve sus bytes.
// entries ya viene ordenado por deuda descendente (lo produce el motor).
func (g *SummaryPDFGenerator) GenerateSummaryPDF(
	totalDue decimal.Decimal,
	totalCustomers int,
	entries []ledger.DueSummaryEntry,
	format reminder.FormatAmount,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Summary & Reports", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(totalDue, totalCustomers, format))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, e := range entries {
		m.AddRows(entryRow(e, format))
	}
	if len(entries) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("No outstanding dues.", props.Text{
				Size: 9, Color: colorGray, Align: align.Center, Top: 2,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Due by Customer", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Top: 3, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func totalsRow(totalDue decimal.Decimal, totalCustomers int, format reminder.FormatAmount) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(format(totalDue), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorDue, Top: 2, Align: align.Center,
			}),
			text.New("TOTAL DUE", props.Text{
				Size: 7, Top: 10, Color: colorGray, Align: align.Center,
			}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("%d", totalCustomers), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2, Align: align.Center,
			}),
			text.New("TOTAL CUSTOMERS", props.Text{
				Size: 7, Top: 10, Color: colorGray, Align: align.Center,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}
	return row.New(8).Add(
		col.New(6).Add(text.New("Customer", header)),
		col.New(3).Add(text.New("Phone", header)),
		col.New(3).Add(text.New("Due", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2, Align: align.Right,
		})),
	)
}

func entryRow(e ledger.DueSummaryEntry, format reminder.FormatAmount) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(e.Customer.Name, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(e.Customer.Phone, props.Text{Size: 9, Top: 1, Color: colorGray})),
		col.New(3).Add(text.New(format(e.Due), props.Text{
			Size: 9, Top: 1, Color: colorDue, Align: align.Right,
		})),
	)
}
