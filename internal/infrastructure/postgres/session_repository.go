package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

var _ repository.SessionMarkerStore = (*MarkerRepo)(nil)

// MarkerRepo implementación del puerto SessionMarkerStore sobre PostgreSQL.
// Usa una tabla de ranura única (slot fijo): el UPSERT garantiza la escritura
// atómica del par (token, user_id) y la semántica last writer wins.
type MarkerRepo struct {
	pool *pgxpool.Pool
	slot string
}

// NewMarkerRepository construye el almacén durable del marcador de sesión.
// slot identifica la ranura del cliente; distintos clientes usan ranuras distintas.
func NewMarkerRepository(pool *pgxpool.Pool, slot string) *MarkerRepo {
	if slot == "" {
		slot = "default"
	}
	return &MarkerRepo{pool: pool, slot: slot}
}

// Save guarda el par completo, sobrescribiendo el marcador anterior de la ranura.
func (r *MarkerRepo) Save(ctx context.Context, marker repository.SessionMarker) error {
	query := `
		INSERT INTO session_markers (slot, token, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slot) DO UPDATE
		SET token = EXCLUDED.token, user_id = EXCLUDED.user_id, created_at = EXCLUDED.created_at`
	if _, err := r.pool.Exec(ctx, query, r.slot, marker.Token, marker.UserID, marker.CreatedAt); err != nil {
		return fmt.Errorf("guardar marcador de sesión: %w", err)
	}
	return nil
}

// Load devuelve el marcador de la ranura o (nil, nil) si está vacía.
func (r *MarkerRepo) Load(ctx context.Context) (*repository.SessionMarker, error) {
	query := `SELECT token, user_id, created_at FROM session_markers WHERE slot = $1`
	var m repository.SessionMarker
	err := r.pool.QueryRow(ctx, query, r.slot).Scan(&m.Token, &m.UserID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer marcador de sesión: %w", err)
	}
	return &m, nil
}

// Clear borra el marcador de la ranura. Borrar una ranura vacía no es error.
func (r *MarkerRepo) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM session_markers WHERE slot = $1`, r.slot); err != nil {
		return fmt.Errorf("borrar marcador de sesión: %w", err)
	}
	return nil
}
