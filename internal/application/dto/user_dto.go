package dto

import "time"

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	RoleName  string    `json:"role_name,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida con el marcador de sesión JWT y el usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse instantánea del principal de la sesión actual.
type MeResponse struct {
	User        UserResponse    `json:"user"`
	Company     CompanyResponse `json:"company"`
	Permissions []string        `json:"permissions"`
	Wildcard    bool            `json:"wildcard"`
}
