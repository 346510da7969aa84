package usecase

import (
	"context"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/domain"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

// CompanyUseCase consultas de la empresa del tenant actual.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Plan:        company.Plan,
		EmployeeCap: company.EmployeeCap,
		Status:      company.Status,
		Timezone:    company.Settings.Timezone,
		Currency:    company.Settings.Currency,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}, nil
}

// ListModules devuelve las activaciones de módulos RRHH de la empresa.
func (uc *CompanyUseCase) ListModules(ctx context.Context, companyID string) ([]dto.CompanyModuleResponse, error) {
	modules, err := uc.repo.ListModules(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, dto.CompanyModuleResponse{
			ModuleName: m.ModuleName,
			IsActive:   m.IsActive,
			ExpiresAt:  m.ExpiresAt,
		})
	}
	return out, nil
}
