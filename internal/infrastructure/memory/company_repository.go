package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

// CompanyRepository implementación en memoria del directorio de empresas.
type CompanyRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.Company
	modules map[string][]*entity.CompanyModule // companyID -> activaciones
	now     func() time.Time
}

// NewCompanyRepository construye el repositorio con las empresas y módulos dados.
func NewCompanyRepository(companies []*entity.Company, modules []*entity.CompanyModule) *CompanyRepository {
	r := &CompanyRepository{
		byID:    make(map[string]*entity.Company, len(companies)),
		modules: make(map[string][]*entity.CompanyModule),
		now:     time.Now,
	}
	for _, c := range companies {
		r.byID[c.ID] = c
	}
	for _, m := range modules {
		r.modules[m.CompanyID] = append(r.modules[m.CompanyID], m)
	}
	return r
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

// FindByID devuelve (nil, nil) si la empresa no existe.
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// HasActiveModule informa si la empresa tiene el módulo activo y sin vencer.
func (r *CompanyRepository) HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.modules[companyID] {
		if m.ModuleName != moduleName || !m.IsActive {
			continue
		}
		if m.ExpiresAt != nil && m.ExpiresAt.Before(r.now()) {
			continue
		}
		return true, nil
	}
	return false, nil
}

// ListModules devuelve las activaciones de módulos de la empresa.
func (r *CompanyRepository) ListModules(ctx context.Context, companyID string) ([]*entity.CompanyModule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.modules[companyID]
	out := make([]*entity.CompanyModule, 0, len(src))
	for _, m := range src {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}
