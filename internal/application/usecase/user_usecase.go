package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

// UserUseCase administración del personal (sólo Administrador vía middleware).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Create da de alta un miembro del personal con uno de los tres roles.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: username y email son requeridos", domain.ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: rol desconocido: %s", domain.ErrInvalidInput, in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		FirstNames:   in.FirstNames,
		PaternalName: in.PaternalName,
		MaternalName: in.MaternalName,
		Phone:        in.Phone,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario. ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, id)
	}
	return toUserResponse(user), nil
}

// List lista el personal, opcionalmente filtrado por rol o sólo activos.
func (uc *UserUseCase) List(ctx context.Context, role string, onlyActive bool) ([]dto.UserResponse, error) {
	if role != "" && !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: rol desconocido: %s", domain.ErrInvalidArgument, role)
	}
	list, err := uc.users.List(role, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Update actualiza un usuario; Password presente re-hashea.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, id)
	}
	if in.Email != nil {
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de contraseña: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if in.FirstNames != nil {
		user.FirstNames = *in.FirstNames
	}
	if in.PaternalName != nil {
		user.PaternalName = *in.PaternalName
	}
	if in.MaternalName != nil {
		user.MaternalName = *in.MaternalName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol desconocido: %s", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstNames:   u.FirstNames,
		PaternalName: u.PaternalName,
		MaternalName: u.MaternalName,
		Phone:        u.Phone,
		Role:         u.Role,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
