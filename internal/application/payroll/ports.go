package payroll

import (
	"github.com/shopspring/decimal"
)

// PayslipData datos ya calculados que el generador vuelca al documento.
// El generador no calcula nada: recibe los montos finales.
type PayslipData struct {
	CompanyName   string
	EmployeeName  string
	Position      string
	Period        string
	Currency      string
	GrossSalary   decimal.Decimal
	HealthDeduct  decimal.Decimal
	PensionDeduct decimal.Decimal
	NetSalary     decimal.Decimal
}

// PayslipGenerator puerto de generación del comprobante de nómina en PDF.
type PayslipGenerator interface {
	Generate(data PayslipData) ([]byte, error)
}
