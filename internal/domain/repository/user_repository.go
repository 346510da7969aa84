package repository

import (
	"context"

	"github.com/jhoicas/novacore-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura del directorio de usuarios (DIP).
// El núcleo de sesión nunca crea ni muta usuarios; los flujos administrativos que
// lo hacen viven fuera de este módulo.
//
// Contrato de paginación: limit <= 0 significa "sin límite", igual que en el
// puerto de expedientes.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
}
