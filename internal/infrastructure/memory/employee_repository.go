package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

// EmployeeRepository implementación en memoria del directorio de expedientes.
type EmployeeRepository struct {
	mu   sync.RWMutex
	byID map[string]*entity.Employee
}

// NewEmployeeRepository construye el repositorio con los expedientes dados.
func NewEmployeeRepository(employees []*entity.Employee) *EmployeeRepository {
	r := &EmployeeRepository{byID: make(map[string]*entity.Employee, len(employees))}
	for _, e := range employees {
		r.byID[e.ID] = e
	}
	return r
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)

// FindByID devuelve (nil, nil) si el expediente no existe.
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

// ListByCompany lista expedientes de la empresa, ordenados por ID.
func (r *EmployeeRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.Employee
	for _, e := range r.byID {
		if e.CompanyID == companyID {
			cp := *e
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

// CountByCompany cuenta los expedientes de la empresa.
func (r *EmployeeRepository) CountByCompany(ctx context.Context, companyID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.byID {
		if e.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}
