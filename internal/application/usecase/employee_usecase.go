package usecase

import (
	"context"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/domain"
	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

// EmployeeUseCase consultas de expedientes, siempre acotadas al tenant del llamador.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso con el puerto de persistencia.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// ListByCompany lista expedientes de la empresa con paginación. Cualquier registro de
// otra empresa que devuelva el adaptador se descarta: el aislamiento de tenant es la
// invariante central del sistema.
func (uc *EmployeeUseCase) ListByCompany(ctx context.Context, companyID string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		if e.CompanyID != companyID {
			continue
		}
		items = append(items, toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID obtiene un expediente de la empresa indicada. Un expediente de otra empresa
// es indistinguible de uno inexistente: domain.ErrNotFound en ambos casos.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           e.ID,
		CompanyID:    e.CompanyID,
		FullName:     e.FullName(),
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		Position:     e.Position,
		HireDate:     e.HireDate,
		BaseSalary:   e.BaseSalary.StringFixed(2),
		Status:       e.Status,
	}
}
