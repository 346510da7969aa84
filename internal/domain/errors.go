package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrStaleSession       = errors.New("marcador de sesión obsoleto")
	ErrUnknownRole        = errors.New("rol desconocido en el registro")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrModuleDisabled     = errors.New("módulo no activo para la empresa")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
