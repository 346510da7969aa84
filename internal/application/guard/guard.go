// Package guard implementa la decisión declarativa de acceso que consumen las capas
// de presentación, desacoplada de cualquier punto de chequeo concreto.
package guard

// Source contrato mínimo que la guarda necesita de la sesión. Lo implementan tanto
// session.Store como session.Principal. Solo exige lo que Evaluate consulta: un
// requisito vacío concede aunque la sesión sea anónima, así que la autenticación
// no forma parte del contrato.
type Source interface {
	HasPermission(perm string) bool
	HasRole(roleID string) bool
}

// Requirement especificación declarativa de requisitos. Todos los campos son
// opcionales; los campos sin valor se satisfacen vacuamente (no niegan). Es el
// "formato de cable" más estable del sistema: cada punto de entrada de UI depende
// de estos nombres y de sus defaults.
type Requirement struct {
	// Permission permiso único requerido.
	Permission string
	// Permissions lista de permisos; con RequireAll=false basta uno (ANY),
	// con RequireAll=true deben pasar todos (ALL).
	Permissions []string
	RequireAll  bool
	// Role rol único requerido (igualdad exacta de identidad).
	Role string
	// Roles lista de roles; basta que uno coincida.
	Roles []string
}

// Evaluate evalúa los cuatro requisitos como compuertas AND independientes, en orden:
// permiso único, lista de permisos, rol único, lista de roles. Función pura de
// (estado de sesión, requisito); la denegación es un valor, nunca un error.
func Evaluate(src Source, req Requirement) bool {
	if src == nil {
		src = deniedSource{}
	}

	if req.Permission != "" && !src.HasPermission(req.Permission) {
		return false
	}

	if len(req.Permissions) > 0 {
		if req.RequireAll {
			for _, perm := range req.Permissions {
				if !src.HasPermission(perm) {
					return false
				}
			}
		} else {
			any := false
			for _, perm := range req.Permissions {
				if src.HasPermission(perm) {
					any = true
					break
				}
			}
			if !any {
				return false
			}
		}
	}

	if req.Role != "" && !src.HasRole(req.Role) {
		return false
	}

	if len(req.Roles) > 0 {
		match := false
		for _, role := range req.Roles {
			if src.HasRole(role) {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}

	return true
}

// deniedSource fuente conservadora para sesiones aún no inicializadas: niega todo.
type deniedSource struct{}

func (deniedSource) HasPermission(string) bool { return false }
func (deniedSource) HasRole(string) bool       { return false }
