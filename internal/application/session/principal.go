// Package session implementa el núcleo de autenticación de NovaCore: la fuente única
// de verdad sobre "quién está autenticado y qué puede hacer".
//
// El paquete expone dos caminos que producen un Principal: Authenticate (login con
// verificación de credenciales) y Restore (restauración desde un marcador durable,
// sin re-validar credenciales). El Store envuelve un Principal con el ciclo de vida
// Anonymous → Authenticating → Authenticated y la persistencia del marcador.
package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/novacore-api/internal/domain"
	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

// Principal usuario autenticado con su empresa y rol resueltos.
// Es inmutable una vez construido; los consumidores solo leen.
type Principal struct {
	User    *entity.User
	Company *entity.Company
	Role    rbac.RoleDefinition
	// RoleKnown es false cuando User.Role no existe en el registro: el principal
	// conserva su identidad de rol pero opera con cero permisos.
	RoleKnown bool
}

// HasPermission comparación exacta contra el conjunto del rol (o comodín).
// Un principal nil (sesión anónima) niega siempre.
func (p *Principal) HasPermission(perm string) bool {
	if p == nil {
		return false
	}
	return p.Role.HasPermission(perm)
}

// HasAnyPermission true si al menos un permiso de la lista pasa HasPermission.
// Lista vacía niega siempre, autenticado o no.
func (p *Principal) HasAnyPermission(perms []string) bool {
	for _, perm := range perms {
		if p.HasPermission(perm) {
			return true
		}
	}
	return false
}

// HasRole comparación exacta de identidad de rol. Funciona incluso para roles que no
// existen en el registro: la identidad se conserva aunque los permisos sean cero.
func (p *Principal) HasRole(roleID string) bool {
	if p == nil || roleID == "" {
		return false
	}
	return p.User.Role == roleID
}

// IsAuthenticated un principal construido siempre está autenticado; nil no lo está.
func (p *Principal) IsAuthenticated() bool {
	return p != nil
}

// Permissions devuelve el conjunto efectivo ordenado (para respuestas de API).
func (p *Principal) Permissions() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.Role.Permissions))
	copy(out, p.Role.Permissions)
	sort.Strings(out)
	return out
}

// Directory agrupa los directorios externos de solo lectura que el núcleo consulta.
// Inyección explícita: la sesión nunca alcanza otro store global por nombre.
type Directory struct {
	Users     repository.UserRepository
	Companies repository.CompanyRepository
}

// Authenticate busca el usuario activo por email exacto, verifica la credencial con el
// verificador inyectado y resuelve su empresa. Cuenta inexistente, inactiva o password
// incorrecto devuelven todos domain.ErrInvalidCredentials: el llamador no puede
// distinguir cuál de los tres falló.
func (d Directory) Authenticate(ctx context.Context, verifier CredentialVerifier, email, password string) (*Principal, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := d.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	if !user.IsActive() {
		return nil, domain.ErrInvalidCredentials
	}
	if err := verifier.Verify(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return d.resolve(ctx, user)
}

// Restore reconstruye el principal a partir de un user id previamente autenticado
// (restauración de marcador), sin re-validar credenciales. Un id que ya no resuelve a
// un usuario activo devuelve domain.ErrStaleSession.
func (d Directory) Restore(ctx context.Context, userID string) (*Principal, error) {
	if userID == "" {
		return nil, domain.ErrStaleSession
	}
	user, err := d.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario por id: %w", err)
	}
	if !user.IsActive() {
		return nil, domain.ErrStaleSession
	}
	return d.resolve(ctx, user)
}

// resolve completa empresa y rol. Un rol fuera del registro no es fatal: el principal
// queda con cero permisos y el llamador decide si lo reporta como warning de integridad.
func (d Directory) resolve(ctx context.Context, user *entity.User) (*Principal, error) {
	company, err := d.Companies.FindByID(ctx, user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("buscar empresa %s: %w", user.CompanyID, err)
	}
	if company == nil {
		return nil, fmt.Errorf("empresa %s del usuario %s: %w", user.CompanyID, user.ID, domain.ErrNotFound)
	}
	role, known := rbac.Lookup(user.Role)
	return &Principal{
		User:      user,
		Company:   company,
		Role:      role,
		RoleKnown: known,
	}, nil
}
