package dto

// RoleResponse definición de un rol del registro.
type RoleResponse struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Permissions []string `json:"permissions"`
}

// ModuleAccessResponse celdas de la matriz de accesos de la UI.
type ModuleAccessResponse struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}

// RoleMatrixResponse matriz módulo -> accesos de un rol, solo presentación.
type RoleMatrixResponse struct {
	RoleID  string                          `json:"role_id"`
	Modules map[string]ModuleAccessResponse `json:"modules"`
}
