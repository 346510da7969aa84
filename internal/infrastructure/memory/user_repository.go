package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

// UserRepository implementación en memoria del directorio de usuarios.
// Pensada para desarrollo local y tests; el adaptador de producción es postgres.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

// NewUserRepository construye el repositorio con los usuarios dados.
func NewUserRepository(users []*entity.User) *UserRepository {
	r := &UserRepository{
		byID:    make(map[string]*entity.User, len(users)),
		byEmail: make(map[string]*entity.User, len(users)),
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[strings.ToLower(u.Email)] = u
	}
	return r
}

var _ repository.UserRepository = (*UserRepository)(nil)

// FindByID devuelve (nil, nil) si el usuario no existe.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// FindByEmail devuelve (nil, nil) si el usuario no existe. El email es case-insensitive.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// ListByCompany lista usuarios de la empresa, ordenados por ID para paginación estable.
func (r *UserRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.User
	for _, u := range r.byID {
		if u.CompanyID == companyID {
			cp := *u
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
