package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/novacore-api/internal/application/guard"
)

// fakeSource fuente de sesión controlable para los tests.
type fakeSource struct {
	perms map[string]bool
	role  string
}

func (f fakeSource) HasPermission(perm string) bool { return f.perms[perm] }
func (f fakeSource) HasRole(roleID string) bool     { return roleID != "" && f.role == roleID }

// El contrato exige solo las dos consultas que Evaluate usa; una fuente mínima
// como fakeSource debe bastar sin métodos extra.
var _ guard.Source = fakeSource{}

func TestEvaluate(t *testing.T) {
	hrAdmin := fakeSource{
		role: "hr_admin",
		perms: map[string]bool{
			"employees.view":   true,
			"employees.manage": true,
			"payroll.view":     true,
		},
	}

	cases := []struct {
		name string
		src  guard.Source
		req  guard.Requirement
		want bool
	}{
		{
			name: "sin requisitos concede a cualquier fuente",
			src:  hrAdmin,
			req:  guard.Requirement{},
			want: true,
		},
		{
			name: "permiso unico presente",
			src:  hrAdmin,
			req:  guard.Requirement{Permission: "employees.view"},
			want: true,
		},
		{
			name: "permiso unico ausente",
			src:  hrAdmin,
			req:  guard.Requirement{Permission: "settings.write"},
			want: false,
		},
		{
			name: "lista ANY basta con uno",
			src:  hrAdmin,
			req:  guard.Requirement{Permissions: []string{"settings.write", "payroll.view"}},
			want: true,
		},
		{
			name: "lista ANY sin ninguno niega",
			src:  hrAdmin,
			req:  guard.Requirement{Permissions: []string{"settings.write", "reports.view"}},
			want: false,
		},
		{
			name: "lista ALL exige todos",
			src:  hrAdmin,
			req:  guard.Requirement{Permissions: []string{"employees.view", "payroll.view"}, RequireAll: true},
			want: true,
		},
		{
			name: "lista ALL con uno ausente niega",
			src:  hrAdmin,
			req:  guard.Requirement{Permissions: []string{"employees.view", "settings.write"}, RequireAll: true},
			want: false,
		},
		{
			name: "rol unico coincide",
			src:  hrAdmin,
			req:  guard.Requirement{Role: "hr_admin"},
			want: true,
		},
		{
			name: "rol unico distinto niega",
			src:  hrAdmin,
			req:  guard.Requirement{Role: "employer"},
			want: false,
		},
		{
			name: "lista de roles basta con uno",
			src:  hrAdmin,
			req:  guard.Requirement{Roles: []string{"employer", "hr_admin"}},
			want: true,
		},
		{
			name: "compuertas AND: permiso pasa pero rol no",
			src:  hrAdmin,
			req:  guard.Requirement{Permission: "employees.view", Role: "employer"},
			want: false,
		},
		{
			name: "compuertas AND: todas pasan",
			src:  hrAdmin,
			req: guard.Requirement{
				Permission:  "employees.view",
				Permissions: []string{"payroll.view"},
				Role:        "hr_admin",
				Roles:       []string{"hr_admin", "employer"},
			},
			want: true,
		},
		{
			name: "fuente nil niega cualquier requisito",
			src:  nil,
			req:  guard.Requirement{Permission: "employees.view"},
			want: false,
		},
		{
			name: "fuente nil sin requisitos concede",
			src:  nil,
			req:  guard.Requirement{},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, guard.Evaluate(tc.src, tc.req))
		})
	}
}
