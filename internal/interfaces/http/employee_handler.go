package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/application/usecase"
	"github.com/jhoicas/novacore-api/internal/domain"
)

// EmployeeHandler consultas de expedientes del tenant actual.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados de la empresa
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	out, err := h.uc.ListByCompany(c.Context(), GetCompanyID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al listar empleados"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un empleado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "employee id"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el empleado no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al consultar el empleado"})
	}
	return c.JSON(out)
}
