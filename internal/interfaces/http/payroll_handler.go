package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/application/payroll"
	"github.com/jhoicas/novacore-api/internal/domain"
)

// PayrollHandler genera comprobantes de nómina en PDF.
type PayrollHandler struct {
	uc *payroll.PayslipUseCase
}

// NewPayrollHandler construye el handler de nómina.
func NewPayrollHandler(uc *payroll.PayslipUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// Payslip godoc
// @Summary      Comprobante de nómina en PDF
// @Tags         payroll
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id      path   string  true   "employee id"
// @Param        period  query  string  false  "período YYYY-MM (por defecto el mes actual)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/employees/{id}/payslip [get]
func (h *PayrollHandler) Payslip(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		period = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", period); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period debe tener formato YYYY-MM"})
	}

	pdfBytes, err := h.uc.GeneratePayslip(c.Context(), GetCompanyID(c), c.Params("id"), period)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el empleado no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al generar el comprobante"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="payslip-`+period+`.pdf"`)
	return c.Send(pdfBytes)
}
