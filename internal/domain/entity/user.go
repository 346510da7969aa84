package entity

import "time"

// Estados válidos para User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema (pertenece a una Company).
// El campo Role referencia un identificador del registro de roles (rbac);
// un rol que no exista en el registro se trata como "cero permisos", nunca como error fatal.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // employer, senior_manager, hr_admin, hr_user, manager, employee
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Campos de gestión, relevantes solo para roles manager/senior_manager.
	EmployeeID    string   // empleado asociado al usuario, si existe
	DepartmentIDs []string // departamentos bajo su cargo
	ReportsTo     string   // user id del superior directo
	Subordinates  []string // user ids de los reportes directos
}

// IsActive informa si la cuenta puede iniciar sesión.
func (u *User) IsActive() bool {
	return u != nil && u.Status == UserStatusActive
}
