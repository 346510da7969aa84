package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
)

// Fixture conjunto de datos demo para el driver memory.
type Fixture struct {
	Companies []*entity.Company
	Modules   []*entity.CompanyModule
	Users     []*entity.User
	Employees []*entity.Employee
}

// Repos adaptadores en memoria ya poblados, listos para inyectar.
type Repos struct {
	Users     *UserRepository
	Companies *CompanyRepository
	Employees *EmployeeRepository
	Markers   *MarkerStore
}

// NewRepos construye todos los adaptadores a partir de un fixture.
func NewRepos(fx Fixture) *Repos {
	return &Repos{
		Users:     NewUserRepository(fx.Users),
		Companies: NewCompanyRepository(fx.Companies, fx.Modules),
		Employees: NewEmployeeRepository(fx.Employees),
		Markers:   NewMarkerStore(),
	}
}

// DemoFixture dos empresas de demostración con usuarios de cada rol.
// Passwords demo: todas "demo1234". Solo para desarrollo local.
func DemoFixture() Fixture {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	hash := mustHash("demo1234")
	inAYear := now.AddDate(1, 0, 0)

	return Fixture{
		Companies: []*entity.Company{
			{
				ID: "1", Name: "TechCorp", Plan: entity.PlanBusiness, EmployeeCap: 100,
				Settings: entity.CompanySettings{Timezone: "America/Bogota", Currency: "COP", PayrollDay: 30, WorkingHours: 48},
				Status:   "active", CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "2", Name: "Globex", Plan: entity.PlanStarter, EmployeeCap: 25,
				Settings: entity.CompanySettings{Timezone: "America/Mexico_City", Currency: "MXN", PayrollDay: 15, WorkingHours: 40},
				Status:   "active", CreatedAt: now, UpdatedAt: now,
			},
		},
		Modules: []*entity.CompanyModule{
			{ID: "m1", CompanyID: "1", ModuleName: entity.ModulePayroll, IsActive: true, ActivatedAt: now, ExpiresAt: &inAYear, CreatedAt: now, UpdatedAt: now},
			{ID: "m2", CompanyID: "1", ModuleName: entity.ModuleLeave, IsActive: true, ActivatedAt: now, CreatedAt: now, UpdatedAt: now},
			{ID: "m3", CompanyID: "1", ModuleName: entity.ModuleRecruitment, IsActive: false, ActivatedAt: now, CreatedAt: now, UpdatedAt: now},
			{ID: "m4", CompanyID: "2", ModuleName: entity.ModulePayroll, IsActive: true, ActivatedAt: now, CreatedAt: now, UpdatedAt: now},
		},
		Users: []*entity.User{
			{
				ID: "u1", CompanyID: "1", Email: "admin@techcorp.com", PasswordHash: hash,
				Name: "Ana Admin", Role: rbac.RoleEmployer, Status: entity.UserStatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "u2", CompanyID: "1", Email: "maria@techcorp.com", PasswordHash: hash,
				Name: "María Rodríguez", Role: rbac.RoleHRAdmin, Status: entity.UserStatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "u3", CompanyID: "1", Email: "carlos@techcorp.com", PasswordHash: hash,
				Name: "Carlos Gómez", Role: rbac.RoleManager, Status: entity.UserStatusActive,
				EmployeeID: "e1", DepartmentIDs: []string{"d1"}, Subordinates: []string{"u4"},
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "u4", CompanyID: "1", Email: "laura@techcorp.com", PasswordHash: hash,
				Name: "Laura Pérez", Role: rbac.RoleEmployee, Status: entity.UserStatusActive,
				EmployeeID: "e2", ReportsTo: "u3",
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "u5", CompanyID: "1", Email: "pedro@techcorp.com", PasswordHash: hash,
				Name: "Pedro Suspendido", Role: rbac.RoleHRUser, Status: entity.UserStatusInactive,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "u6", CompanyID: "2", Email: "eva@globex.com", PasswordHash: hash,
				Name: "Eva Employer", Role: rbac.RoleEmployer, Status: entity.UserStatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
		},
		Employees: []*entity.Employee{
			{
				ID: "e1", CompanyID: "1", UserID: "u3", FirstName: "Carlos", LastName: "Gómez",
				Email: "carlos@techcorp.com", DepartmentID: "d1", Position: "Jefe de Operaciones",
				HireDate: now.AddDate(-3, 0, 0), BaseSalary: decimal.NewFromInt(8_500_000),
				Status: entity.EmployeeStatusActive, CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "e2", CompanyID: "1", UserID: "u4", FirstName: "Laura", LastName: "Pérez",
				Email: "laura@techcorp.com", DepartmentID: "d1", Position: "Analista",
				HireDate: now.AddDate(-1, -2, 0), BaseSalary: decimal.NewFromInt(4_200_000),
				Status: entity.EmployeeStatusActive, CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "e3", CompanyID: "2", UserID: "u6", FirstName: "Eva", LastName: "García",
				Email: "eva@globex.com", DepartmentID: "d9", Position: "Directora",
				HireDate: now.AddDate(-5, 0, 0), BaseSalary: decimal.NewFromInt(95_000),
				Status: entity.EmployeeStatusActive, CreatedAt: now, UpdatedAt: now,
			},
		},
	}
}

func mustHash(plain string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}
