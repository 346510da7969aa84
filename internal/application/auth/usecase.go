package auth

import (
	"context"

	"github.com/jhoicas/novacore-api/internal/application/dto"
	"github.com/jhoicas/novacore-api/internal/application/session"
	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/pkg/jwt"
	"github.com/jhoicas/novacore-api/pkg/logger"
)

// JWTConfig configuración para la emisión del marcador de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación HTTP: login emite el marcador JWT que el
// cliente guarda en almacenamiento durable. Comparte con session.Store los mismos
// caminos Authenticate/Restore, así que las reglas (solo cuentas activas, credencial
// delegada al verificador) son idénticas en ambas superficies.
type AuthUseCase struct {
	dir      session.Directory
	verifier session.CredentialVerifier
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(dir session.Directory, verifier session.CredentialVerifier, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if verifier == nil {
		verifier = session.BcryptVerifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{dir: dir, verifier: verifier, jwtCfg: jwtCfg, log: log}
}

// Login autentica y emite el par (token, user_id) dentro del JWT firmado.
// Devuelve domain.ErrInvalidCredentials ante cuenta inexistente, inactiva o password
// incorrecto, sin distinguir cuál.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	principal, err := uc.dir.Authenticate(ctx, uc.verifier, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if !principal.RoleKnown {
		uc.log.Warn().
			Str("user_id", principal.User.ID).
			Str("role", principal.User.Role).
			Msg("login con rol no registrado; token emitido con cero permisos")
	}
	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		principal.User.ID,
		principal.Company.ID,
		principal.User.Role,
		uc.jwtCfg.Issuer,
		uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(principal),
	}, nil
}

// Me construye la instantánea del principal para GET /api/auth/me.
func (uc *AuthUseCase) Me(principal *session.Principal) *dto.MeResponse {
	if principal == nil {
		return nil
	}
	return &dto.MeResponse{
		User:        *toUserResponse(principal),
		Company:     toCompanyResponse(principal.Company),
		Permissions: principal.Permissions(),
		Wildcard:    principal.Role.IsWildcard(),
	}
}

func toUserResponse(p *session.Principal) *dto.UserResponse {
	u := p.User
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		RoleName:  p.Role.DisplayName,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Plan:        c.Plan,
		EmployeeCap: c.EmployeeCap,
		Status:      c.Status,
		Timezone:    c.Settings.Timezone,
		Currency:    c.Settings.Currency,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
