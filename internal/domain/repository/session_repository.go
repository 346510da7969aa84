package repository

import (
	"context"
	"time"
)

// SessionMarker par (token opaco, user id) que permite restaurar una sesión tras un
// reinicio del proceso cliente. Se escribe y borra siempre como par completo: un
// marcador parcial no es un estado válido.
type SessionMarker struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

// SessionMarkerStore define el puerto de almacenamiento durable del marcador.
// Semántica de ranura única: Save sobrescribe el marcador anterior (last writer wins),
// Load devuelve (nil, nil) si no hay marcador y Clear es idempotente.
type SessionMarkerStore interface {
	Save(ctx context.Context, marker SessionMarker) error
	Load(ctx context.Context) (*SessionMarker, error)
	Clear(ctx context.Context) error
}
