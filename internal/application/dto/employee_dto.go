package dto

import "time"

// EmployeeResponse salida de un expediente. El salario viaja como string decimal
// para no perder precisión en JSON.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	DepartmentID string    `json:"department_id,omitempty"`
	Position     string    `json:"position"`
	HireDate     time.Time `json:"hire_date"`
	BaseSalary   string    `json:"base_salary"`
	Status       string    `json:"status"`
}

// EmployeeListResponse listado paginado de expedientes.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
