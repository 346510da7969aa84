// Package rbac contiene el registro estático de roles y permisos de NovaCore.
//
// Un permiso es un token con namespace de punto: <módulo>.<acción> (ej. employees.view).
// La comparación es siempre por igualdad exacta y sensible a mayúsculas; el único token
// especial es PermissionAll ("*"), que concede todos los permisos.
//
// El registro se carga una vez al arrancar el proceso y es inmutable en runtime.
package rbac

// PermissionAll es el comodín reservado: el rol que lo porta tiene todos los permisos.
const PermissionAll = "*"

// Identificadores de rol válidos para User.Role.
const (
	RoleEmployer      = "employer"
	RoleSeniorManager = "senior_manager"
	RoleHRAdmin       = "hr_admin"
	RoleHRUser        = "hr_user"
	RoleManager       = "manager"
	RoleEmployee      = "employee"
)

// Catálogo de permisos por módulo.
const (
	PermDashboardView     = "dashboard.view"
	PermEmployeesView     = "employees.view"
	PermEmployeesManage   = "employees.manage"
	PermPayrollView       = "payroll.view"
	PermPayrollManage     = "payroll.manage"
	PermLeaveView         = "leave.view"
	PermLeaveManage       = "leave.manage"
	PermLeaveApprove      = "leave.approve"
	PermAttendanceView    = "attendance.view"
	PermAttendanceManage  = "attendance.manage"
	PermRecruitmentView   = "recruitment.view"
	PermRecruitmentManage = "recruitment.manage"
	PermPerformanceView   = "performance.view"
	PermPerformanceManage = "performance.manage"
	PermNominationsView   = "nominations.view"
	PermNominationsManage = "nominations.manage"
	PermReportsView       = "reports.view"
	PermSettingsView      = "settings.view"
	PermSettingsWrite     = "settings.write"
)

// RoleDefinition perfil de un rol: presentación + conjunto de permisos.
type RoleDefinition struct {
	ID          string
	DisplayName string
	Description string
	Color       string // etiqueta de color para la UI
	Permissions []string
}

// HasPermission informa si el rol porta el permiso exacto (o el comodín).
func (r RoleDefinition) HasPermission(perm string) bool {
	if perm == "" {
		return false
	}
	for _, p := range r.Permissions {
		if p == PermissionAll || p == perm {
			return true
		}
	}
	return false
}

// IsWildcard informa si el rol porta el permiso comodín.
func (r RoleDefinition) IsWildcard() bool {
	for _, p := range r.Permissions {
		if p == PermissionAll {
			return true
		}
	}
	return false
}

// registry tabla estática rol -> definición. No se muta después de init.
var registry = map[string]RoleDefinition{
	RoleEmployer: {
		ID:          RoleEmployer,
		DisplayName: "Empleador",
		Description: "Propietario de la cuenta; acceso total a todos los módulos",
		Color:       "purple",
		Permissions: []string{PermissionAll},
	},
	RoleSeniorManager: {
		ID:          RoleSeniorManager,
		DisplayName: "Gerente Senior",
		Description: "Supervisa gerentes y departamentos; aprueba y nomina",
		Color:       "indigo",
		Permissions: []string{
			PermDashboardView,
			PermEmployeesView,
			PermPayrollView,
			PermLeaveView,
			PermLeaveApprove,
			PermAttendanceView,
			PermPerformanceView,
			PermPerformanceManage,
			PermNominationsView,
			PermNominationsManage,
			PermReportsView,
		},
	},
	RoleHRAdmin: {
		ID:          RoleHRAdmin,
		DisplayName: "Administrador RRHH",
		Description: "Gestiona expedientes, nómina, ausencias y reclutamiento",
		Color:       "blue",
		Permissions: []string{
			PermDashboardView,
			PermEmployeesView,
			PermEmployeesManage,
			PermPayrollView,
			PermPayrollManage,
			PermLeaveView,
			PermLeaveManage,
			PermLeaveApprove,
			PermAttendanceView,
			PermAttendanceManage,
			PermRecruitmentView,
			PermRecruitmentManage,
			PermPerformanceView,
			PermReportsView,
			PermSettingsView,
		},
	},
	RoleHRUser: {
		ID:          RoleHRUser,
		DisplayName: "Analista RRHH",
		Description: "Consulta expedientes, ausencias y vacantes; sin edición",
		Color:       "cyan",
		Permissions: []string{
			PermDashboardView,
			PermEmployeesView,
			PermLeaveView,
			PermAttendanceView,
			PermRecruitmentView,
		},
	},
	RoleManager: {
		ID:          RoleManager,
		DisplayName: "Gerente",
		Description: "Gestiona su equipo directo; aprueba ausencias",
		Color:       "green",
		Permissions: []string{
			PermDashboardView,
			PermEmployeesView,
			PermLeaveView,
			PermLeaveApprove,
			PermAttendanceView,
			PermPerformanceView,
			PermNominationsView,
		},
	},
	RoleEmployee: {
		ID:          RoleEmployee,
		DisplayName: "Empleado",
		Description: "Consulta su propia información y solicita ausencias",
		Color:       "gray",
		Permissions: []string{
			PermDashboardView,
			PermLeaveView,
			PermAttendanceView,
		},
	},
}

// Lookup devuelve la definición del rol. El segundo valor es false si el rol no existe;
// los llamadores deben tratarlo como "cero permisos", no como error fatal.
func Lookup(roleID string) (RoleDefinition, bool) {
	def, ok := registry[roleID]
	return def, ok
}

// Roles devuelve los identificadores registrados (orden estable para presentación).
func Roles() []string {
	return []string{
		RoleEmployer,
		RoleSeniorManager,
		RoleHRAdmin,
		RoleHRUser,
		RoleManager,
		RoleEmployee,
	}
}
