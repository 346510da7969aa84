package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

// MarkerStore implementación en memoria del almacén de marcador de sesión.
// Ranura única: Save sobrescribe, Load devuelve (nil, nil) si no hay marcador
// y Clear es idempotente.
type MarkerStore struct {
	mu     sync.Mutex
	marker *repository.SessionMarker
}

// NewMarkerStore construye un almacén vacío.
func NewMarkerStore() *MarkerStore {
	return &MarkerStore{}
}

var _ repository.SessionMarkerStore = (*MarkerStore)(nil)

// Save guarda el par completo, sobrescribiendo el anterior (last writer wins).
func (s *MarkerStore) Save(ctx context.Context, marker repository.SessionMarker) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := marker
	s.marker = &cp
	return nil
}

// Load devuelve el marcador actual o (nil, nil) si la ranura está vacía.
func (s *MarkerStore) Load(ctx context.Context) (*repository.SessionMarker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.marker == nil {
		return nil, nil
	}
	cp := *s.marker
	return &cp, nil
}

// Clear vacía la ranura. Llamarlo sin marcador no es error.
func (s *MarkerStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marker = nil
	return nil
}
