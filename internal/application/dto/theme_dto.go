package dto

// ThemeResponse preferencias de tema actuales.
type ThemeResponse struct {
	DarkMode       bool   `json:"dark_mode"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	CompanyName    string `json:"company_name"`
	LogoURL        string `json:"logo_url,omitempty"`
}

// UpdateThemeRequest entrada para actualizar preferencias; los campos nil/vacíos
// conservan el valor anterior.
type UpdateThemeRequest struct {
	DarkMode       *bool  `json:"dark_mode"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	CompanyName    string `json:"company_name"`
	LogoURL        string `json:"logo_url"`
}
