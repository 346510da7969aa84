package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/application/guard"
)

// RequireGuard devuelve un middleware Fiber que evalúa un requisito de autorización
// contra el principal restaurado. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → no hay principal en el contexto.
//   - 403 Forbidden    → el principal no cumple el requisito (la denegación es un
//     valor, nunca un error interno).
func RequireGuard(req guard.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "se requiere sesión activa",
			})
		}
		if !guard.Evaluate(principal, req) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "no tiene permisos para acceder a este recurso",
			})
		}
		return c.Next()
	}
}
