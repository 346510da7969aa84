package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Employee.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusOnLeave  = "on_leave"
	EmployeeStatusInactive = "inactive"
)

// Employee representa el expediente laboral de una persona dentro de una Company.
// Es una entidad de solo lectura desde el núcleo de autorización: la sesión la consulta
// (siempre acotada por CompanyID) pero nunca la muta.
type Employee struct {
	ID           string
	CompanyID    string
	UserID       string // usuario asociado, si tiene acceso al sistema
	FirstName    string
	LastName     string
	Email        string
	DepartmentID string
	Position     string
	HireDate     time.Time
	BaseSalary   decimal.Decimal // mensual, en la moneda de la empresa
	Status       string          // active, on_leave, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo para presentación.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
