package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/application/usecase"
	"github.com/jhoicas/novacore-api/internal/domain"
)

// CompanyHandler consultas de la empresa del tenant actual.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresa.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetCurrent godoc
// @Summary      Empresa de la sesión actual
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) GetCurrent(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la empresa no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al consultar la empresa"})
	}
	return c.JSON(out)
}

// ListModules godoc
// @Summary      Módulos RRHH de la empresa
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CompanyModuleResponse
// @Router       /api/company/modules [get]
func (h *CompanyHandler) ListModules(c *fiber.Ctx) error {
	out, err := h.uc.ListModules(c.Context(), GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al consultar los módulos"})
	}
	return c.JSON(out)
}
