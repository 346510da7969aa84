// Package pdf implementa la generación del comprobante de nómina en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  COMPROBANTE DE NÓMINA + Período        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPLEADO: Nombre + Cargo                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Salario base / Salud / Pensión                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NETO A PAGAR                                               │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/jhoicas/novacore-api/internal/application/payroll"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ payroll.PayslipGenerator = (*MarotoPayslipGenerator)(nil)

// MarotoPayslipGenerator implementa payroll.PayslipGenerator usando Maroto v2.
type MarotoPayslipGenerator struct{}

// NewMarotoPayslipGenerator construye el generador.
func NewMarotoPayslipGenerator() *MarotoPayslipGenerator { return &MarotoPayslipGenerator{} }

// Generate genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoPayslipGenerator) Generate(data payroll.PayslipData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Nómina", true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(netRow(data))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + período (der).
func headerRow(data payroll.PayslipData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE NÓMINA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+data.Period, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// employeeRow: datos del empleado.
func employeeRow(data payroll.PayslipData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPLEADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.EmployeeName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Cargo: "+data.Position, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// detailRows: salario base y deducciones, una fila por concepto.
func detailRows(data payroll.PayslipData) []core.Row {
	concept := func(label, amount string, deduction bool) core.Row {
		prefix := ""
		if deduction {
			prefix = "-"
		}
		return row.New(7).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(4).Add(text.New(
				prefix+amount+" "+data.Currency,
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
		)
	}
	return []core.Row{
		concept("Salario base", formatMoney(data.GrossSalary.StringFixed(2)), false),
		concept("Aporte salud (4%)", formatMoney(data.HealthDeduct.StringFixed(2)), true),
		concept("Aporte pensión (4%)", formatMoney(data.PensionDeduct.StringFixed(2)), true),
	}
}

// netRow: neto a pagar destacado.
func netRow(data payroll.PayslipData) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("NETO A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New(
			formatMoney(data.NetSalary.StringFixed(2))+" "+data.Currency,
			props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1},
		)),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento informativo generado por NovaCore. Conserve este comprobante "+
				"como soporte de pago.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en la parte entera de un string numérico.
// Ej: "8500000.00" → "8.500.000,00"
func formatMoney(s string) string {
	intPart := s
	decPart := ""
	for i := range s {
		if s[i] == '.' {
			intPart = s[:i]
			decPart = "," + s[i+1:]
			break
		}
	}
	n := len(intPart)
	if n <= 3 {
		return intPart + decPart
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	return string(buf) + decPart
}
