package dto

import "time"

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Plan        string    `json:"plan"`
	EmployeeCap int       `json:"employee_cap"`
	Status      string    `json:"status"`
	Timezone    string    `json:"timezone,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyModuleResponse activación de un módulo RRHH.
type CompanyModuleResponse struct {
	ModuleName string     `json:"module_name"`
	IsActive   bool       `json:"is_active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}
