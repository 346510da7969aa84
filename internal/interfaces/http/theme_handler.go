package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/application/theme"
)

// ThemeHandler lee y actualiza las preferencias de presentación.
type ThemeHandler struct {
	store *theme.Store
}

// NewThemeHandler construye el handler de tema.
func NewThemeHandler(store *theme.Store) *ThemeHandler {
	return &ThemeHandler{store: store}
}

// Get godoc
// @Summary      Preferencias de tema actuales
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/theme [get]
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toThemeResponse(h.store.Snapshot()))
}

// Update godoc
// @Summary      Actualizar preferencias de tema
// @Tags         theme
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateThemeRequest  true  "campos a actualizar; vacíos conservan el valor anterior"
// @Success      200  {object}  dto.ThemeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/theme [put]
func (h *ThemeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DarkMode != nil {
		h.store.SetDarkMode(*in.DarkMode)
	}
	h.store.SetColors(in.PrimaryColor, in.SecondaryColor)
	h.store.SetFontFamily(in.FontFamily)
	h.store.SetBranding(in.CompanyName, in.LogoURL)
	return c.JSON(toThemeResponse(h.store.Snapshot()))
}

func toThemeResponse(p theme.Preference) dto.ThemeResponse {
	return dto.ThemeResponse{
		DarkMode:       p.DarkMode,
		PrimaryColor:   p.PrimaryColor,
		SecondaryColor: p.SecondaryColor,
		FontFamily:     p.FontFamily,
		CompanyName:    p.CompanyName,
		LogoURL:        p.LogoURL,
	}
}
