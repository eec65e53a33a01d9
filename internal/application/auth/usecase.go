package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
	"github.com/jhoicas/dulcibelle-api/pkg/jwt"
)

// SessionConfig configuración para firmar el token de sesión del panel.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del panel y alta de administradores.
type AuthUseCase struct {
	adminRepo  repository.AdminRepository
	sessionCfg SessionConfig
	cost       int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, sessionCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, sessionCfg: sessionCfg, cost: bcrypt.DefaultCost}
}

// WithCost cambia el coste de bcrypt (tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Login verifica usuario/contraseña y emite el token de sesión.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	admin, err := uc.adminRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, expiresAt, err := jwt.Generate(uc.sessionCfg.Secret, admin.ID, admin.Username, uc.sessionCfg.Issuer, uc.sessionCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     *toAdminResponse(admin),
	}, nil
}

// ProvisionAdmin crea un administrador con la contraseña hasheada. ErrDuplicate si el usuario existe.
func (uc *AuthUseCase) ProvisionAdmin(ctx context.Context, username, password string) (*dto.AdminResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return nil, err
	}
	admin := &entity.Admin{Username: username, PasswordHash: string(hash)}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// CurrentAdmin resuelve el admin de una sesión ya validada. Nil si fue eliminado.
func (uc *AuthUseCase) CurrentAdmin(ctx context.Context, id int64) (*dto.AdminResponse, error) {
	admin, err := uc.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	return &dto.AdminResponse{ID: a.ID, Username: a.Username}
}
