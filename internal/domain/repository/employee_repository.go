package repository

import (
	"context"

	"github.com/jhoicas/novacore-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de lectura de expedientes (DIP).
// Todas las consultas del núcleo llegan acotadas por companyID: el aislamiento de
// tenant se refuerza además en la capa de aplicación.
//
// Contrato de paginación: limit <= 0 significa "sin límite" (todos los registros
// del tenant); los adaptadores deben honrarlo de forma idéntica.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Employee, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
