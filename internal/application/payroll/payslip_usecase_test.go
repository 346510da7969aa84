package payroll_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/novacore-api/internal/application/payroll"
	"github.com/jhoicas/novacore-api/internal/domain"
	"github.com/jhoicas/novacore-api/internal/infrastructure/memory"
)

// captureGenerator guarda los datos recibidos en lugar de producir un PDF real.
type captureGenerator struct {
	last payroll.PayslipData
}

func (g *captureGenerator) Generate(data payroll.PayslipData) ([]byte, error) {
	g.last = data
	return []byte("%PDF-fake"), nil
}

func buildUseCase(t *testing.T) (*payroll.PayslipUseCase, *captureGenerator) {
	t.Helper()
	repos := memory.NewRepos(memory.DemoFixture())
	gen := &captureGenerator{}
	return payroll.NewPayslipUseCase(repos.Employees, repos.Companies, gen), gen
}

// Deducciones del 4% de salud y 4% de pensión sobre el salario base.
func TestGeneratePayslip_Calculo(t *testing.T) {
	uc, gen := buildUseCase(t)

	// e1 (Carlos, TechCorp): salario base 8.500.000 COP.
	out, err := uc.GeneratePayslip(context.Background(), "1", "e1", "2026-01")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	assert.Equal(t, "TechCorp", gen.last.CompanyName)
	assert.Equal(t, "Carlos Gómez", gen.last.EmployeeName)
	assert.Equal(t, "COP", gen.last.Currency)
	assert.Equal(t, "2026-01", gen.last.Period)
	assert.Equal(t, "8500000.00", gen.last.GrossSalary.StringFixed(2))
	assert.Equal(t, "340000.00", gen.last.HealthDeduct.StringFixed(2))
	assert.Equal(t, "340000.00", gen.last.PensionDeduct.StringFixed(2))
	assert.Equal(t, "7820000.00", gen.last.NetSalary.StringFixed(2))
}

// Un empleado de otra empresa es indistinguible de uno inexistente.
func TestGeneratePayslip_AislamientoDeTenant(t *testing.T) {
	uc, _ := buildUseCase(t)
	ctx := context.Background()

	// e3 pertenece a Globex ("2"); TechCorp ("1") no puede verlo.
	_, err := uc.GeneratePayslip(ctx, "1", "e3", "2026-01")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Y un id inexistente responde exactamente igual.
	_, err = uc.GeneratePayslip(ctx, "1", "e-fantasma", "2026-01")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
