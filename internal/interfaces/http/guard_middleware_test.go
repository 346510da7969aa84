package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/novacore-api/internal/application/guard"
	"github.com/jhoicas/novacore-api/internal/application/session"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
	"github.com/jhoicas/novacore-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/novacore-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/novacore-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "novacore-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT y restaurar el principal
//   - RequireGuard para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(req guard.Requirement) *fiber.App {
	repos := memory.NewRepos(memory.DemoFixture())
	dir := session.Directory{Users: repos.Users, Companies: repos.Companies}

	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, dir),
		apphttp.RequireGuard(req),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para un usuario del fixture demo.
func tokenFor(t *testing.T, userID, companyID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, companyID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	code, _ := body["code"].(string)
	return code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El comodín del employer pasa cualquier requisito de permiso.
func TestRequireGuard_EmployerPasaPorComodin(t *testing.T) {
	app := buildTestApp(guard.Requirement{Permission: rbac.PermSettingsWrite})
	resp := doRequest(t, app, tokenFor(t, "u1", "1", rbac.RoleEmployer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"employer debe pasar el requisito settings.write")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u1", body["user_id"])
}

// Un empleado sin el permiso recibe 403, nunca 500.
func TestRequireGuard_EmpleadoSinPermiso(t *testing.T) {
	app := buildTestApp(guard.Requirement{Permission: rbac.PermEmployeesManage})
	resp := doRequest(t, app, tokenFor(t, "u4", "1", rbac.RoleEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

// Requisito combinado: el permiso pasa pero el rol exigido no coincide.
func TestRequireGuard_RolNoCoincide(t *testing.T) {
	app := buildTestApp(guard.Requirement{
		Permission: rbac.PermEmployeesView,
		Role:       rbac.RoleEmployer,
	})
	resp := doRequest(t, app, tokenFor(t, "u2", "1", rbac.RoleHRAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"hr_admin tiene employees.view pero el requisito de rol employer lo niega")
}

// Lista ANY: basta un permiso de la lista.
func TestRequireGuard_ListaANY(t *testing.T) {
	app := buildTestApp(guard.Requirement{
		Permissions: []string{rbac.PermSettingsWrite, rbac.PermLeaveView},
	})
	resp := doRequest(t, app, tokenFor(t, "u4", "1", rbac.RoleEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"employee porta leave.view, suficiente en modo ANY")
}

// Sin token: 401 antes de evaluar cualquier guarda.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp(guard.Requirement{})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

// Token firmado con otro secreto: 401.
func TestAuthMiddleware_FirmaInvalida(t *testing.T) {
	app := buildTestApp(guard.Requirement{})
	tok, err := pkgjwt.Generate("otro-secreto", "u1", "1", rbac.RoleEmployer, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

// Token válido de una cuenta desactivada: sesión obsoleta, 401.
func TestAuthMiddleware_CuentaDesactivada(t *testing.T) {
	app := buildTestApp(guard.Requirement{})
	resp := doRequest(t, app, tokenFor(t, "u5", "1", rbac.RoleHRUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_STALE", errorCode(t, resp))
}

// Token válido de un usuario que ya no existe: misma respuesta obsoleta.
func TestAuthMiddleware_UsuarioEliminado(t *testing.T) {
	app := buildTestApp(guard.Requirement{})
	resp := doRequest(t, app, tokenFor(t, "u-borrado", "1", rbac.RoleEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_STALE", errorCode(t, resp))
}

// El tenant del token debe coincidir con el del directorio: un token de u6 (Globex)
// manipulado para apuntar a TechCorp se rechaza.
func TestAuthMiddleware_TenantNoCoincide(t *testing.T) {
	app := buildTestApp(guard.Requirement{})
	resp := doRequest(t, app, tokenFor(t, "u6", "1", rbac.RoleEmployer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_STALE", errorCode(t, resp))
}
