package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
	"github.com/shatalito/pos-api/pkg/config"
	"github.com/shatalito/pos-api/pkg/jwt"
)

// Rutas de aterrizaje tras el login según rol.
const (
	redirectCocina = "/cocina/dashboard"
	redirectCaja   = "/caja/dashboard"
)

// AuthUseCase autenticación del personal y emisión de tokens.
type AuthUseCase struct {
	users repository.UserRepository
	jwt   config.JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwt: jwtCfg}
}

// Login valida credenciales y emite un JWT. Credencial inválida y cuenta
// inactiva responden igual para no filtrar cuáles usuarios existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwt.Secret, user.ID, user.Username, user.Role, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, err
	}
	redirect := redirectCaja
	if user.Role == entity.RoleCocinero {
		redirect = redirectCocina
	}
	return &dto.LoginResponse{
		Message:     "Login exitoso",
		Token:       token,
		Username:    user.Username,
		Role:        user.Role,
		RedirectURL: redirect,
	}, nil
}
