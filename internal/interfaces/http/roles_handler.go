package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
)

// RolesHandler expone el registro de roles y la matriz de accesos de la UI.
type RolesHandler struct{}

// NewRolesHandler construye el handler de roles.
func NewRolesHandler() *RolesHandler {
	return &RolesHandler{}
}

// List godoc
// @Summary      Listar roles del sistema
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/roles [get]
func (h *RolesHandler) List(c *fiber.Ctx) error {
	ids := rbac.Roles()
	out := make([]dto.RoleResponse, 0, len(ids))
	for _, id := range ids {
		def, ok := rbac.Lookup(id)
		if !ok {
			continue
		}
		out = append(out, dto.RoleResponse{
			ID:          def.ID,
			DisplayName: def.DisplayName,
			Description: def.Description,
			Color:       def.Color,
			Permissions: append([]string(nil), def.Permissions...),
		})
	}
	return c.JSON(out)
}

// Matrix godoc
// @Summary      Matriz de accesos de un rol (solo presentación)
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "role id"
// @Success      200  {object}  dto.RoleMatrixResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id}/matrix [get]
func (h *RolesHandler) Matrix(c *fiber.Ctx) error {
	roleID := c.Params("id")
	if _, ok := rbac.Lookup(roleID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el rol no existe"})
	}
	access := rbac.DefaultAccess(roleID)
	modules := make(map[string]dto.ModuleAccessResponse, len(access))
	for name, a := range access {
		modules[name] = dto.ModuleAccessResponse{Read: a.Read, Write: a.Write, Delete: a.Delete}
	}
	return c.JSON(dto.RoleMatrixResponse{RoleID: roleID, Modules: modules})
}
