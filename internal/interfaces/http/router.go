package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/novacore-api/internal/application/auth"
	"github.com/jhoicas/novacore-api/internal/application/guard"
	"github.com/jhoicas/novacore-api/internal/application/payroll"
	"github.com/jhoicas/novacore-api/internal/application/session"
	"github.com/jhoicas/novacore-api/internal/application/theme"
	"github.com/jhoicas/novacore-api/internal/application/usecase"
	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EmployeeUC *usecase.EmployeeUseCase
	CompanyUC  *usecase.CompanyUseCase
	PayslipUC  *payroll.PayslipUseCase
	Modules    *usecase.ModuleService
	Theme      *theme.Store
	Directory  session.Directory
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Theme (lectura pública: la pantalla de login necesita la marca)
	themeHandler := NewThemeHandler(deps.Theme)
	api.Get("/theme", themeHandler.Get)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Directory))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Registro de roles (cualquier sesión activa)
	rolesHandler := NewRolesHandler()
	roles := protected.Group("/roles")
	roles.Get("/", rolesHandler.List)
	roles.Get("/:id/matrix", rolesHandler.Matrix)

	// Employees (protegido por permiso)
	employees := protected.Group("/employees", RequireGuard(guard.Requirement{
		Permission: rbac.PermEmployeesView,
	}))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)

	// Payroll (protegido por permiso Y módulo contratado)
	payrollGroup := protected.Group("/payroll",
		RequireGuard(guard.Requirement{Permissions: []string{rbac.PermPayrollView, rbac.PermPayrollManage}}),
		RequireModule(entity.ModulePayroll, deps.Modules),
	)
	payrollHandler := NewPayrollHandler(deps.PayslipUC)
	payrollGroup.Get("/employees/:id/payslip", payrollHandler.Payslip)

	// Company (protegido)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.GetCurrent)
	protected.Get("/company/modules", RequireGuard(guard.Requirement{
		Permission: rbac.PermSettingsView,
	}), companyHandler.ListModules)

	// Theme (escritura solo con settings.write)
	protected.Put("/theme", RequireGuard(guard.Requirement{
		Permission: rbac.PermSettingsWrite,
	}), themeHandler.Update)
}
