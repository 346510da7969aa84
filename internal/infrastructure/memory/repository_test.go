package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/novacore-api/internal/domain/repository"
	"github.com/jhoicas/novacore-api/internal/infrastructure/memory"
)

// Contrato de paginación del puerto: limit <= 0 significa "sin límite".
// El núcleo de sesión lista con (0, 0) esperando todos los expedientes del tenant;
// este test fija esa semántica para que ningún adaptador la convierta en lista vacía.
func TestEmployeeListByCompany_LimiteCeroEsSinLimite(t *testing.T) {
	repos := memory.NewRepos(memory.DemoFixture())
	ctx := context.Background()

	all, err := repos.Employees.ListByCompany(ctx, "1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2, "TechCorp tiene dos expedientes; limit=0 devuelve todos")

	total, err := repos.Employees.CountByCompany(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, len(all), total, "limit=0 y el conteo deben coincidir")
}

// Con límite positivo sí se pagina, con orden estable por ID.
func TestEmployeeListByCompany_Paginacion(t *testing.T) {
	repos := memory.NewRepos(memory.DemoFixture())
	ctx := context.Background()

	first, err := repos.Employees.ListByCompany(ctx, "1", 1, 0)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "e1", first[0].ID)

	second, err := repos.Employees.ListByCompany(ctx, "1", 1, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "e2", second[0].ID)

	// Offset más allá del final: lista vacía, no error.
	past, err := repos.Employees.ListByCompany(ctx, "1", 1, 99)
	require.NoError(t, err)
	assert.Empty(t, past)
}

// Mismo contrato en el directorio de usuarios.
func TestUserListByCompany_LimiteCeroEsSinLimite(t *testing.T) {
	repos := memory.NewRepos(memory.DemoFixture())

	all, err := repos.Users.ListByCompany(context.Background(), "1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5, "TechCorp tiene cinco usuarios en el fixture")
}

// Semántica de ranura única del marcador: Save sobrescribe (last writer wins),
// Load sin marcador devuelve (nil, nil) y Clear es idempotente.
func TestMarkerStore_RanuraUnica(t *testing.T) {
	store := memory.NewMarkerStore()
	ctx := context.Background()

	marker, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, marker, "ranura vacía devuelve (nil, nil)")

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, repository.SessionMarker{Token: "t1", UserID: "u1", CreatedAt: now}))
	require.NoError(t, store.Save(ctx, repository.SessionMarker{Token: "t2", UserID: "u2", CreatedAt: now.Add(time.Minute)}))

	marker, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, marker)
	assert.Equal(t, "t2", marker.Token, "el último escritor gana")
	assert.Equal(t, "u2", marker.UserID)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx), "limpiar una ranura vacía no es error")

	marker, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, marker)
}
