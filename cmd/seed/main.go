// seed genera el script SQL que puebla la DB con el tenant de demostración
// (mismo fixture que usa el driver memory, así los dos orígenes de datos son
// intercambiables en desarrollo).
//
// Uso: go run ./cmd/seed [ruta de salida]
// Por defecto escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/novacore-api/internal/infrastructure/memory"
)

func main() {
	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	fx := memory.DemoFixture()
	var b strings.Builder

	b.WriteString("-- Datos de demostración. Generado por cmd/seed; no editar a mano.\n\n")

	for _, c := range fx.Companies {
		fmt.Fprintf(&b,
			"INSERT INTO companies (id, name, plan, employee_cap, timezone, currency, payroll_day, working_hours, status, created_at, updated_at)\n"+
				"VALUES (%s, %s, %s, %d, %s, %s, %d, %d, %s, %s, %s)\nON CONFLICT (id) DO NOTHING;\n\n",
			q(c.ID), q(c.Name), q(c.Plan), c.EmployeeCap,
			q(c.Settings.Timezone), q(c.Settings.Currency), c.Settings.PayrollDay, c.Settings.WorkingHours,
			q(c.Status), ts(c.CreatedAt), ts(c.UpdatedAt),
		)
	}

	for _, m := range fx.Modules {
		fmt.Fprintf(&b,
			"INSERT INTO company_modules (id, company_id, module_name, is_active, activated_at, expires_at, created_at, updated_at)\n"+
				"VALUES (%s, %s, %s, %t, %s, %s, %s, %s)\nON CONFLICT (company_id, module_name) DO NOTHING;\n\n",
			q(m.ID), q(m.CompanyID), q(m.ModuleName), m.IsActive,
			ts(m.ActivatedAt), tsPtr(m.ExpiresAt), ts(m.CreatedAt), ts(m.UpdatedAt),
		)
	}

	for _, u := range fx.Users {
		fmt.Fprintf(&b,
			"INSERT INTO users (id, company_id, email, password_hash, name, role, status, employee_id, department_ids, reports_to, subordinates, created_at, updated_at)\n"+
				"VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)\nON CONFLICT (id) DO NOTHING;\n\n",
			q(u.ID), q(u.CompanyID), q(u.Email), q(u.PasswordHash), q(u.Name), q(u.Role), q(u.Status),
			qOrNull(u.EmployeeID), arr(u.DepartmentIDs), qOrNull(u.ReportsTo), arr(u.Subordinates),
			ts(u.CreatedAt), ts(u.UpdatedAt),
		)
	}

	for _, e := range fx.Employees {
		fmt.Fprintf(&b,
			"INSERT INTO employees (id, company_id, user_id, first_name, last_name, email, department_id, position, hire_date, base_salary, status, created_at, updated_at)\n"+
				"VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)\nON CONFLICT (id) DO NOTHING;\n\n",
			q(e.ID), q(e.CompanyID), qOrNull(e.UserID), q(e.FirstName), q(e.LastName), q(e.Email),
			qOrNull(e.DepartmentID), q(e.Position), ts(e.HireDate), e.BaseSalary.StringFixed(2),
			q(e.Status), ts(e.CreatedAt), ts(e.UpdatedAt),
		)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seed generado: %s (%d empresas, %d usuarios, %d empleados)\n",
		outPath, len(fx.Companies), len(fx.Users), len(fx.Employees))
}

// q escapa un literal de texto SQL.
func q(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func qOrNull(s string) string {
	if s == "" {
		return "NULL"
	}
	return q(s)
}

func ts(t time.Time) string {
	return q(t.UTC().Format(time.RFC3339))
}

func tsPtr(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return ts(*t)
}

// arr formatea un text[] de PostgreSQL.
func arr(items []string) string {
	if len(items) == 0 {
		return "'{}'"
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = `"` + strings.ReplaceAll(it, `"`, `\"`) + `"`
	}
	return q("{" + strings.Join(quoted, ",") + "}")
}
