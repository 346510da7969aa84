package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/novacore-api/internal/domain/rbac"
)

// El comodín concede cualquier permiso, incluso tokens que no existen en el catálogo.
func TestHasPermission_ComodinConcedeTodo(t *testing.T) {
	employer, ok := rbac.Lookup(rbac.RoleEmployer)
	require.True(t, ok, "employer debe existir en el registro")

	assert.True(t, employer.IsWildcard(), "employer porta el comodín")
	assert.True(t, employer.HasPermission(rbac.PermSettingsWrite))
	assert.True(t, employer.HasPermission("modulo.inventado"),
		"el comodín concede incluso permisos fuera del catálogo")
}

// La comparación es exacta y sensible a mayúsculas: ni prefijos ni variantes.
func TestHasPermission_ComparacionExacta(t *testing.T) {
	hrAdmin, ok := rbac.Lookup(rbac.RoleHRAdmin)
	require.True(t, ok)

	assert.True(t, hrAdmin.HasPermission(rbac.PermEmployeesManage))
	assert.False(t, hrAdmin.HasPermission("employees"), "el prefijo del módulo no es un permiso")
	assert.False(t, hrAdmin.HasPermission("Employees.Manage"), "sensible a mayúsculas")
	assert.False(t, hrAdmin.HasPermission(""), "el permiso vacío niega siempre")
}

// Un rol sin comodín no obtiene permisos que no porta.
func TestHasPermission_SinComodinNiega(t *testing.T) {
	employee, ok := rbac.Lookup(rbac.RoleEmployee)
	require.True(t, ok)

	assert.False(t, employee.IsWildcard())
	assert.True(t, employee.HasPermission(rbac.PermLeaveView))
	assert.False(t, employee.HasPermission(rbac.PermEmployeesView))
	assert.False(t, employee.HasPermission(rbac.PermissionAll),
		"portar '*' es distinto de pedir '*': employee no lo porta")
}

// Un rol desconocido devuelve ok=false y definición vacía (cero permisos).
func TestLookup_RolDesconocido(t *testing.T) {
	def, ok := rbac.Lookup("superadmin")
	assert.False(t, ok)
	assert.Empty(t, def.Permissions, "rol desconocido opera con cero permisos")
	assert.False(t, def.HasPermission(rbac.PermDashboardView))
}

// Todos los roles listados existen en el registro.
func TestRoles_TodosRegistrados(t *testing.T) {
	ids := rbac.Roles()
	require.Len(t, ids, 6)
	for _, id := range ids {
		_, ok := rbac.Lookup(id)
		assert.True(t, ok, "rol %s debe existir en el registro", id)
	}
}

// La matriz de la UI no puede prometer accesos sin respaldo en los permission strings.
func TestVerifyMatrix_SinDeriva(t *testing.T) {
	assert.NoError(t, rbac.VerifyMatrix(),
		"la matriz de presentación debe estar alineada con el registro de roles")
}

// DefaultAccess devuelve copia defensiva: mutar el resultado no toca la tabla.
func TestDefaultAccess_CopiaDefensiva(t *testing.T) {
	first := rbac.DefaultAccess(rbac.RoleEmployee)
	require.NotEmpty(t, first)
	first[rbac.MatrixPayroll] = rbac.ModuleAccess{Read: true, Write: true, Delete: true}

	second := rbac.DefaultAccess(rbac.RoleEmployee)
	_, leaked := second[rbac.MatrixPayroll]
	assert.False(t, leaked, "la mutación del llamador no debe filtrarse a la tabla")
}

// Un rol desconocido obtiene matriz vacía, no nil-panic.
func TestDefaultAccess_RolDesconocido(t *testing.T) {
	access := rbac.DefaultAccess("superadmin")
	assert.Empty(t, access)
}
