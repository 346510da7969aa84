package rbac

import (
	"errors"
	"fmt"
)

// Módulos que aparecen en la matriz de accesos de la UI.
const (
	MatrixDashboard   = "dashboard"
	MatrixEmployees   = "employees"
	MatrixPayroll     = "payroll"
	MatrixLeave       = "leave"
	MatrixAttendance  = "attendance"
	MatrixRecruitment = "recruitment"
	MatrixPerformance = "performance"
	MatrixNominations = "nominations"
	MatrixReports     = "reports"
	MatrixSettings    = "settings"
)

// ModuleAccess celdas {lectura, escritura, borrado} de la matriz de permisos.
//
// ATENCIÓN: esta tabla existe únicamente para pintar matrices de permisos en la UI.
// Las decisiones de autorización reales usan exclusivamente los permission strings del
// registro de roles; nunca consultar esta tabla desde el evaluador de guardas.
type ModuleAccess struct {
	Read   bool
	Write  bool
	Delete bool
}

// defaultAccess tabla rol -> módulo -> accesos, solo presentación.
var defaultAccess = map[string]map[string]ModuleAccess{
	RoleEmployer: {
		MatrixDashboard:   {Read: true},
		MatrixEmployees:   {Read: true, Write: true, Delete: true},
		MatrixPayroll:     {Read: true, Write: true},
		MatrixLeave:       {Read: true, Write: true},
		MatrixAttendance:  {Read: true, Write: true},
		MatrixRecruitment: {Read: true, Write: true, Delete: true},
		MatrixPerformance: {Read: true, Write: true},
		MatrixNominations: {Read: true, Write: true},
		MatrixReports:     {Read: true},
		MatrixSettings:    {Read: true, Write: true},
	},
	RoleSeniorManager: {
		MatrixDashboard:   {Read: true},
		MatrixEmployees:   {Read: true},
		MatrixPayroll:     {Read: true},
		MatrixLeave:       {Read: true},
		MatrixAttendance:  {Read: true},
		MatrixPerformance: {Read: true, Write: true},
		MatrixNominations: {Read: true, Write: true},
		MatrixReports:     {Read: true},
	},
	RoleHRAdmin: {
		MatrixDashboard:   {Read: true},
		MatrixEmployees:   {Read: true, Write: true, Delete: true},
		MatrixPayroll:     {Read: true, Write: true},
		MatrixLeave:       {Read: true, Write: true},
		MatrixAttendance:  {Read: true, Write: true},
		MatrixRecruitment: {Read: true, Write: true, Delete: true},
		MatrixPerformance: {Read: true},
		MatrixReports:     {Read: true},
		MatrixSettings:    {Read: true},
	},
	RoleHRUser: {
		MatrixDashboard:   {Read: true},
		MatrixEmployees:   {Read: true},
		MatrixLeave:       {Read: true},
		MatrixAttendance:  {Read: true},
		MatrixRecruitment: {Read: true},
	},
	RoleManager: {
		MatrixDashboard:   {Read: true},
		MatrixEmployees:   {Read: true},
		MatrixLeave:       {Read: true},
		MatrixAttendance:  {Read: true},
		MatrixPerformance: {Read: true},
		MatrixNominations: {Read: true},
	},
	RoleEmployee: {
		MatrixDashboard:  {Read: true},
		MatrixLeave:      {Read: true},
		MatrixAttendance: {Read: true},
	},
}

// DefaultAccess devuelve la matriz de accesos del rol para la UI (copia defensiva).
// Un rol desconocido devuelve matriz vacía.
func DefaultAccess(roleID string) map[string]ModuleAccess {
	src, ok := defaultAccess[roleID]
	if !ok {
		return map[string]ModuleAccess{}
	}
	out := make(map[string]ModuleAccess, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// VerifyMatrix comprueba que la matriz de la UI no prometa accesos sin respaldo en el
// conjunto de permission strings del rol. Las dos representaciones conviven sin
// interactuar, así que pueden desalinearse; este chequeo de integridad se ejecuta al
// arrancar para detectar la deriva antes de que la UI mienta.
func VerifyMatrix() error {
	var findings []error
	for roleID, modules := range defaultAccess {
		def, ok := Lookup(roleID)
		if !ok {
			findings = append(findings, fmt.Errorf("matriz referencia rol inexistente %q", roleID))
			continue
		}
		for module, access := range modules {
			if access.Read && !def.HasPermission(module+".view") {
				findings = append(findings, fmt.Errorf("rol %s: matriz concede lectura de %s sin permiso %s.view", roleID, module, module))
			}
			writeToken := module + ".manage"
			if module == MatrixSettings {
				writeToken = PermSettingsWrite
			}
			if access.Write && !def.HasPermission(writeToken) {
				findings = append(findings, fmt.Errorf("rol %s: matriz concede escritura de %s sin permiso %s", roleID, module, writeToken))
			}
			if access.Delete && !def.HasPermission(module+".manage") {
				findings = append(findings, fmt.Errorf("rol %s: matriz concede borrado de %s sin permiso %s.manage", roleID, module, module))
			}
		}
	}
	return errors.Join(findings...)
}
