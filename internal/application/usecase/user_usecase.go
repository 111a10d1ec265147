package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
	"github.com/shatalito/pos-api/pkg/password"
)

// UserUseCase gestión de cuentas del personal. Operaciones reservadas al
// Super Usuario; el actor siempre llega como username del token.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Create da de alta un usuario activo. El username es único, el rol debe
// pertenecer a la enumeración y la contraseña cumplir la política.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if ok, msg := password.Validate(in.Password); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	existing, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListActive lista los usuarios activos.
func (uc *UserUseCase) ListActive() ([]dto.UserResponse, error) {
	users, err := uc.users.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update modifica rol, contraseña y/o el flag activo de un usuario.
// Un Super Usuario no puede desactivarse a sí mismo.
func (uc *UserUseCase) Update(actor, username string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Active != nil && !*in.Active && username == actor {
		return nil, domain.ErrForbidden
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Password != nil && *in.Password != "" {
		if ok, msg := password.Validate(*in.Password); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete da de baja lógica a un usuario (Active=false). Nadie puede
// eliminarse a sí mismo ni eliminar a un Super Usuario.
func (uc *UserUseCase) Delete(actor, username string) error {
	if username == actor {
		return domain.ErrForbidden
	}
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Role == entity.RoleSuperUsuario {
		return domain.ErrForbidden
	}
	user.Active = false
	return uc.users.Update(user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
