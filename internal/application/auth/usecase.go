// Package auth implementa la autenticación del personal: verificación de
// credenciales con bcrypt y emisión de JWT con el rol en los claims.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/jwt"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

// Config parámetros de emisión de tokens.
type Config struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase login del personal.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, cfg Config, log *logger.Logger) *UseCase {
	return &UseCase{users: users, cfg: cfg, log: log.Module("auth")}
}

// Login verifica credenciales y emite un JWT. Credenciales inválidas y
// usuario inactivo devuelven el mismo ErrUnauthorized: no se filtra cuál
// de las dos condiciones falló.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Debug().Str("username", in.Username).Msg("intento de login fallido")
		return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Username, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:           user.ID,
			Username:     user.Username,
			Email:        user.Email,
			FirstNames:   user.FirstNames,
			PaternalName: user.PaternalName,
			MaternalName: user.MaternalName,
			Phone:        user.Phone,
			Role:         user.Role,
			Active:       user.Active,
			CreatedAt:    user.CreatedAt,
			UpdatedAt:    user.UpdatedAt,
		},
	}, nil
}
