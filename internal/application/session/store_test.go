package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/novacore-api/internal/application/session"
	"github.com/jhoicas/novacore-api/internal/domain"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
	"github.com/jhoicas/novacore-api/internal/infrastructure/memory"
)

const demoPassword = "demo1234"

// buildStore construye un Store sobre los adaptadores en memoria con el fixture demo.
func buildStore(t *testing.T) (*session.Store, *memory.Repos) {
	t.Helper()
	repos := memory.NewRepos(memory.DemoFixture())
	store := session.NewStore(session.StoreDeps{
		Directory: session.Directory{Users: repos.Users, Companies: repos.Companies},
		Employees: repos.Employees,
		Markers:   repos.Markers,
	})
	return store, repos
}

// Login exitoso de un employer: sesión autenticada, empresa correcta y comodín activo.
func TestLogin_EmployerAutenticado(t *testing.T) {
	store, repos := buildStore(t)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "admin@techcorp.com", demoPassword))

	assert.Equal(t, session.StateAuthenticated, store.State())
	assert.True(t, store.IsAuthenticated())
	assert.False(t, store.Loading())

	user := store.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "admin@techcorp.com", user.Email)

	company := store.CurrentCompany()
	require.NotNil(t, company)
	assert.Equal(t, user.CompanyID, company.ID,
		"la empresa de la sesión siempre es la del usuario autenticado")
	assert.Equal(t, "TechCorp", company.Name)

	assert.True(t, store.IsEmployer())
	assert.True(t, store.HasPermission(rbac.PermSettingsWrite),
		"el comodín del employer concede settings.write")
	assert.True(t, store.HasPermission("modulo.inventado"))

	marker, err := repos.Markers.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, marker, "el login persiste el marcador")
	assert.Equal(t, user.ID, marker.UserID)
	assert.NotEmpty(t, marker.Token)
}

// Password incorrecto: ErrInvalidCredentials y la sesión queda Anonymous.
func TestLogin_PasswordIncorrecto(t *testing.T) {
	store, repos := buildStore(t)
	ctx := context.Background()

	err := store.Login(ctx, "admin@techcorp.com", "password-equivocado")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, session.StateAnonymous, store.State())
	assert.Nil(t, store.CurrentUser())

	marker, loadErr := repos.Markers.Load(ctx)
	require.NoError(t, loadErr)
	assert.Nil(t, marker, "un login fallido no deja marcador")
}

// Cuenta inactiva: indistinguible de credenciales incorrectas.
func TestLogin_CuentaInactiva(t *testing.T) {
	store, _ := buildStore(t)

	err := store.Login(context.Background(), "pedro@techcorp.com", demoPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"cuenta inactiva responde igual que password incorrecto")
	assert.Equal(t, session.StateAnonymous, store.State())
}

// Cuenta inexistente: misma respuesta que password incorrecto.
func TestLogin_CuentaInexistente(t *testing.T) {
	store, _ := buildStore(t)

	err := store.Login(context.Background(), "nadie@techcorp.com", demoPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, session.StateAnonymous, store.State())
}

// Contexto cancelado: el login no confirma y la sesión queda Anonymous.
func TestLogin_ContextoCancelado(t *testing.T) {
	store, _ := buildStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Login(ctx, "admin@techcorp.com", demoPassword)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials,
		"la cancelación no es una falla de credenciales")
	assert.Equal(t, session.StateAnonymous, store.State())
	assert.Nil(t, store.CurrentUser())
}

// Logout limpia marcador y sesión; repetirlo es un no-op exitoso.
func TestLogout_Idempotente(t *testing.T) {
	store, repos := buildStore(t)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "maria@techcorp.com", demoPassword))
	require.True(t, store.IsAuthenticated())

	store.Logout(ctx)
	assert.Equal(t, session.StateAnonymous, store.State())
	assert.Nil(t, store.CurrentUser())

	marker, err := repos.Markers.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, marker)

	// Segunda llamada sin sesión: no-op, sin pánico ni error.
	store.Logout(ctx)
	assert.Equal(t, session.StateAnonymous, store.State())

	// Y tras el logout no hay nada que restaurar: InitializeAuth queda Anonymous,
	// no devuelve al usuario anterior.
	store.InitializeAuth(ctx)
	assert.Equal(t, session.StateAnonymous, store.State())
	assert.Nil(t, store.CurrentUser())
}

// Ciclo completo: login → reinicio simulado → InitializeAuth restaura la misma identidad.
func TestInitializeAuth_RestauraSesion(t *testing.T) {
	first, repos := buildStore(t)
	ctx := context.Background()

	require.NoError(t, first.Login(ctx, "maria@techcorp.com", demoPassword))
	userID := first.CurrentUser().ID

	// Nuevo Store sobre el mismo almacén de marcadores: simula reinicio del proceso.
	restored := session.NewStore(session.StoreDeps{
		Directory: session.Directory{Users: repos.Users, Companies: repos.Companies},
		Employees: repos.Employees,
		Markers:   repos.Markers,
	})
	restored.InitializeAuth(ctx)

	assert.Equal(t, session.StateAuthenticated, restored.State())
	require.NotNil(t, restored.CurrentUser())
	assert.Equal(t, userID, restored.CurrentUser().ID)
	assert.True(t, restored.IsHRAdmin())
	assert.True(t, restored.HasPermission(rbac.PermEmployeesManage))
}

// Sin marcador: InitializeAuth deja la sesión Anonymous en silencio.
func TestInitializeAuth_SinMarcador(t *testing.T) {
	store, _ := buildStore(t)

	store.InitializeAuth(context.Background())
	assert.Equal(t, session.StateAnonymous, store.State())
}

// Marcador obsoleto (usuario ya no existe): se descarta y se limpia, sin error.
func TestInitializeAuth_MarcadorObsoleto(t *testing.T) {
	store, repos := buildStore(t)
	ctx := context.Background()

	require.NoError(t, repos.Markers.Save(ctx, repository.SessionMarker{
		Token:  "token-huerfano",
		UserID: "u-eliminado",
	}))

	store.InitializeAuth(ctx)
	assert.Equal(t, session.StateAnonymous, store.State())

	marker, err := repos.Markers.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, marker, "el marcador obsoleto se elimina completo")
}

// Marcador de una cuenta desactivada después del login: también es obsoleto.
func TestInitializeAuth_CuentaDesactivada(t *testing.T) {
	store, repos := buildStore(t)
	ctx := context.Background()

	require.NoError(t, repos.Markers.Save(ctx, repository.SessionMarker{
		Token:  "token-viejo",
		UserID: "u5", // pedro: status inactive en el fixture
	}))

	store.InitializeAuth(ctx)
	assert.Equal(t, session.StateAnonymous, store.State())
}

// CompanyEmployees devuelve solo expedientes del tenant de la sesión.
func TestCompanyEmployees_AislamientoDeTenant(t *testing.T) {
	store, _ := buildStore(t)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "eva@globex.com", demoPassword))

	list, err := store.CompanyEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "Globex tiene un único expediente en el fixture")
	for _, emp := range list {
		assert.Equal(t, "2", emp.CompanyID,
			"ningún expediente de otra empresa puede filtrarse")
	}
}

// Sin autenticar, CompanyEmployees devuelve lista vacía, no error.
func TestCompanyEmployees_SinSesion(t *testing.T) {
	store, _ := buildStore(t)

	list, err := store.CompanyEmployees(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Semántica de listas: ANY vacía niega, ALL vacía se satisface con sesión activa.
func TestPermisos_ListasVacias(t *testing.T) {
	store, _ := buildStore(t)
	ctx := context.Background()

	// Sin sesión: todo niega.
	assert.False(t, store.HasAnyPermission(nil))
	assert.False(t, store.HasAllPermissions(nil), "ALL vacía exige sesión autenticada")
	assert.False(t, store.HasPermission(rbac.PermDashboardView))
	assert.False(t, store.HasRole(rbac.RoleEmployee))

	require.NoError(t, store.Login(ctx, "laura@techcorp.com", demoPassword))

	assert.False(t, store.HasAnyPermission(nil), "ANY con lista vacía niega siempre")
	assert.True(t, store.HasAllPermissions(nil), "ALL con lista vacía se satisface vacuamente")
	assert.True(t, store.HasAnyPermission([]string{rbac.PermSettingsWrite, rbac.PermLeaveView}))
	assert.False(t, store.HasAllPermissions([]string{rbac.PermSettingsWrite, rbac.PermLeaveView}))
}

// Un rol fuera del registro conserva identidad pero opera con cero permisos.
func TestLogin_RolDesconocido(t *testing.T) {
	fx := memory.DemoFixture()
	fx.Users[0].Role = "superadmin" // admin@techcorp.com con rol fuera del registro
	repos := memory.NewRepos(fx)
	store := session.NewStore(session.StoreDeps{
		Directory: session.Directory{Users: repos.Users, Companies: repos.Companies},
		Employees: repos.Employees,
		Markers:   repos.Markers,
	})
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "admin@techcorp.com", demoPassword),
		"un rol desconocido nunca es una falla de login")
	assert.True(t, store.IsAuthenticated())
	assert.True(t, store.HasRole("superadmin"),
		"la identidad de rol se conserva aunque no esté registrado")
	assert.False(t, store.HasPermission(rbac.PermDashboardView),
		"rol desconocido opera con cero permisos")
}
