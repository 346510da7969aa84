package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/application/session"
	"github.com/jhoicas/novacore-api/internal/domain"
	"github.com/jhoicas/novacore-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalPrincipal = "principal"
)

// AuthMiddleware valida el Bearer Token JWT y restaura el principal completo
// (usuario + empresa + rol resuelto) a c.Locals. Un token válido cuya cuenta ya no
// existe o fue desactivada se trata como sesión obsoleta: 401, nunca 500.
func AuthMiddleware(jwtSecret string, dir session.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, companyID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		principal, err := dir.Restore(c.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrStaleSession) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_STALE", Message: "la sesión ya no es válida, inicie sesión de nuevo"})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_CHECK_FAILED", Message: "no se pudo validar la sesión, intente más tarde"})
		}
		// El tenant del token debe coincidir con el del directorio.
		if principal.Company == nil || principal.Company.ID != companyID {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_STALE", Message: "la sesión ya no es válida, inicie sesión de nuevo"})
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalCompanyID, principal.Company.ID)
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPrincipal devuelve el principal restaurado o nil si no hay sesión.
func GetPrincipal(c *fiber.Ctx) *session.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	p, _ := v.(*session.Principal)
	return p
}
