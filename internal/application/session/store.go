package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/novacore-api/internal/domain"
	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
	"github.com/jhoicas/novacore-api/pkg/logger"
)

// State estado del ciclo de vida de la sesión.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

// String para logs.
func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// StoreDeps dependencias del Store (inyección por constructor; sin estado global).
type StoreDeps struct {
	Directory Directory
	Employees repository.EmployeeRepository
	Markers   repository.SessionMarkerStore
	Verifier  CredentialVerifier
	Logger    *logger.Logger
}

// Store la única entidad mutable del núcleo: posee en exclusiva la sesión actual.
// Todos los demás componentes (guardas, consumidores de UI) solo leen a través de
// sus métodos de consulta. El RWMutex garantiza que ninguna lectura vea una sesión
// a medio poblar aunque el proceso anfitrión sea concurrente.
type Store struct {
	deps StoreDeps
	now  func() time.Time

	mu        sync.RWMutex
	state     State
	principal *Principal
}

// NewStore construye un Store vacío (Anonymous). El dueño es la raíz de composición.
func NewStore(deps StoreDeps) *Store {
	if deps.Verifier == nil {
		deps.Verifier = BcryptVerifier{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &Store{deps: deps, now: time.Now}
}

// Login autentica por email entre usuarios activos y puebla la sesión. Las fallas de
// negocio (cuenta inexistente, inactiva, password incorrecto) devuelven
// domain.ErrInvalidCredentials y dejan la sesión exactamente como estaba: Anonymous.
// Si el contexto se cancela antes de confirmar, la sesión también queda Anonymous.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.state = StateAuthenticating
	s.principal = nil
	s.mu.Unlock()

	principal, err := s.deps.Directory.Authenticate(ctx, s.deps.Verifier, email, password)
	if err != nil {
		s.reset()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if !principal.RoleKnown {
		// Integridad de datos: el usuario referencia un rol fuera del registro.
		// Se reporta y se continúa con cero permisos; nunca es un crash.
		s.deps.Logger.Warn().
			Str("user_id", principal.User.ID).
			Str("role", principal.User.Role).
			Msg("rol no registrado; sesión con cero permisos")
	}

	marker := repository.SessionMarker{
		Token:     uuid.New().String(),
		UserID:    principal.User.ID,
		CreatedAt: s.now(),
	}
	if err := s.deps.Markers.Save(ctx, marker); err != nil {
		s.reset()
		return err
	}
	if err := ctx.Err(); err != nil {
		// Login cancelado después de persistir: deshacer el marcador y quedar Anonymous.
		_ = s.deps.Markers.Clear(context.WithoutCancel(ctx))
		s.reset()
		return err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.principal = principal
	s.mu.Unlock()

	s.deps.Logger.Info().
		Str("user_id", principal.User.ID).
		Str("company_id", principal.Company.ID).
		Str("role", principal.User.Role).
		Msg("sesión iniciada")
	return nil
}

// Logout limpia el marcador persistido y vacía la sesión. Idempotente: cerrar una
// sesión ya cerrada es un no-op exitoso.
func (s *Store) Logout(ctx context.Context) {
	if err := s.deps.Markers.Clear(ctx); err != nil {
		s.deps.Logger.Warn().Err(err).Msg("no se pudo limpiar el marcador de sesión")
	}
	s.reset()
}

// InitializeAuth restaura la sesión desde el marcador persistido, si existe y sigue
// resolviendo a un usuario activo. Un marcador ausente u obsoleto deja la sesión
// Anonymous en silencio; nunca lanza. Debe llamarse una vez al arrancar, antes de
// evaluar guardas (las evaluaciones previas niegan de forma conservadora).
func (s *Store) InitializeAuth(ctx context.Context) {
	marker, err := s.deps.Markers.Load(ctx)
	if err != nil {
		s.deps.Logger.Error().Err(err).Msg("leer marcador de sesión")
		return
	}
	if marker == nil {
		return
	}
	principal, err := s.deps.Directory.Restore(ctx, marker.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrStaleSession) {
			// El par ya no sirve: se elimina completo para no dejar estado parcial.
			_ = s.deps.Markers.Clear(ctx)
			s.deps.Logger.Debug().Str("user_id", marker.UserID).Msg("marcador obsoleto descartado")
			return
		}
		s.deps.Logger.Error().Err(err).Msg("restaurar sesión")
		return
	}
	if !principal.RoleKnown {
		s.deps.Logger.Warn().
			Str("user_id", principal.User.ID).
			Str("role", principal.User.Role).
			Msg("rol no registrado; sesión restaurada con cero permisos")
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.principal = principal
	s.mu.Unlock()
}

func (s *Store) reset() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.principal = nil
	s.mu.Unlock()
}

// ── Consultas ─────────────────────────────────────────────────────────────────

// State estado actual del ciclo de vida.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated invariante: true si y solo si hay principal.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal != nil
}

// Loading true solo durante un login en vuelo.
func (s *Store) Loading() bool {
	return s.State() == StateAuthenticating
}

// CurrentUser usuario autenticado, o nil.
func (s *Store) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return nil
	}
	return s.principal.User
}

// CurrentCompany empresa de la sesión, o nil. Invariante: siempre es la empresa cuyo
// id coincide con CurrentUser().CompanyID.
func (s *Store) CurrentCompany() *entity.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return nil
	}
	return s.principal.Company
}

// HasPermission false sin autenticar; true incondicional con rol comodín; si no,
// pertenencia exacta del string al conjunto del rol.
func (s *Store) HasPermission(perm string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal.HasPermission(perm)
}

// HasAnyPermission true si al menos uno pasa; lista vacía es false siempre.
func (s *Store) HasAnyPermission(perms []string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal.HasAnyPermission(perms)
}

// HasAllPermissions true si todos pasan (lista vacía se satisface vacuamente, pero
// sigue exigiendo sesión autenticada).
func (s *Store) HasAllPermissions(perms []string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return false
	}
	for _, perm := range perms {
		if !s.principal.HasPermission(perm) {
			return false
		}
	}
	return true
}

// HasRole comparación exacta de identidad de rol.
func (s *Store) HasRole(roleID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal.HasRole(roleID)
}

// Azúcar por rol sobre HasRole.
func (s *Store) IsEmployer() bool      { return s.HasRole(rbac.RoleEmployer) }
func (s *Store) IsSeniorManager() bool { return s.HasRole(rbac.RoleSeniorManager) }
func (s *Store) IsHRAdmin() bool       { return s.HasRole(rbac.RoleHRAdmin) }
func (s *Store) IsHRUser() bool        { return s.HasRole(rbac.RoleHRUser) }
func (s *Store) IsManager() bool       { return s.HasRole(rbac.RoleManager) }
func (s *Store) IsEmployee() bool      { return s.HasRole(rbac.RoleEmployee) }

// CompanyEmployees devuelve solo expedientes de la empresa de la sesión actual; lista
// vacía sin autenticar. Aislamiento de tenant: aunque el adaptador devolviera registros
// ajenos, aquí se filtran y se reporta la violación.
func (s *Store) CompanyEmployees(ctx context.Context) ([]*entity.Employee, error) {
	s.mu.RLock()
	principal := s.principal
	s.mu.RUnlock()
	if principal == nil {
		return []*entity.Employee{}, nil
	}

	companyID := principal.Company.ID
	list, err := s.deps.Employees.ListByCompany(ctx, companyID, 0, 0)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Employee, 0, len(list))
	for _, emp := range list {
		if emp.CompanyID != companyID {
			s.deps.Logger.Error().
				Str("employee_id", emp.ID).
				Str("expected_company", companyID).
				Str("actual_company", emp.CompanyID).
				Msg("adaptador devolvió expediente de otra empresa; descartado")
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}
