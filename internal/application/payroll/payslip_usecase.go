package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/novacore-api/internal/domain"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

// Porcentajes de aportes del empleado sobre el salario base.
var (
	healthRate  = decimal.NewFromFloat(0.04)
	pensionRate = decimal.NewFromFloat(0.04)
)

// PayslipUseCase genera el comprobante de nómina de un empleado para un período.
type PayslipUseCase struct {
	employees repository.EmployeeRepository
	companies repository.CompanyRepository
	generator PayslipGenerator
}

// NewPayslipUseCase construye el caso de uso de comprobantes.
func NewPayslipUseCase(employees repository.EmployeeRepository, companies repository.CompanyRepository, generator PayslipGenerator) *PayslipUseCase {
	return &PayslipUseCase{employees: employees, companies: companies, generator: generator}
}

// GeneratePayslip calcula deducciones y produce el PDF. Un empleado de otra empresa
// es indistinguible de uno inexistente: domain.ErrNotFound en ambos casos.
func (uc *PayslipUseCase) GeneratePayslip(ctx context.Context, companyID, employeeID, period string) ([]byte, error) {
	emp, err := uc.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	gross := emp.BaseSalary
	health := gross.Mul(healthRate).Round(2)
	pension := gross.Mul(pensionRate).Round(2)
	net := gross.Sub(health).Sub(pension)

	return uc.generator.Generate(PayslipData{
		CompanyName:   company.Name,
		EmployeeName:  emp.FullName(),
		Position:      emp.Position,
		Period:        period,
		Currency:      company.Settings.Currency,
		GrossSalary:   gross,
		HealthDeduct:  health,
		PensionDeduct: pension,
		NetSalary:     net,
	})
}
