package repository

import (
	"context"

	"github.com/jhoicas/novacore-api/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura del directorio de empresas (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Company, error)
	// HasActiveModule informa si la empresa tiene el módulo RRHH activo y sin vencer.
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
	// ListModules devuelve las activaciones de módulos de la empresa.
	ListModules(ctx context.Context, companyID string) ([]*entity.CompanyModule, error)
}
