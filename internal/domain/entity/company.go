package entity

import "time"

// Planes disponibles para Company.
const (
	PlanStarter    = "starter"
	PlanBusiness   = "business"
	PlanEnterprise = "enterprise"
)

// Company representa una organización/tenant del sistema. Es el límite de aislamiento:
// ninguna consulta puede devolver datos de una empresa distinta a la de la sesión actual.
type Company struct {
	ID          string
	Name        string
	Plan        string // ver constantes Plan*
	EmployeeCap int    // máximo de empleados permitido por el plan
	Settings    CompanySettings
	Status      string // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompanySettings preferencias por empresa (sin semántica de autorización).
type CompanySettings struct {
	Timezone     string
	Currency     string
	PayrollDay   int // día del mes de cierre de nómina
	WorkingHours int // jornada semanal
}

// Módulos RRHH disponibles (deben coincidir con el CHECK de la tabla company_modules).
const (
	ModulePayroll     = "payroll"
	ModuleLeave       = "leave"
	ModuleRecruitment = "recruitment"
	ModulePerformance = "performance"
)

// CompanyModule representa la activación de un módulo RRHH en una empresa.
type CompanyModule struct {
	ID          string
	CompanyID   string
	ModuleName  string // ver constantes Module*
	IsActive    bool
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil = sin vencimiento
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
