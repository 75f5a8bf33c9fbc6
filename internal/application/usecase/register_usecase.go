package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

// RegisterUseCase CRUD de cajas registradoras y asignación de cajeros.
type RegisterUseCase struct {
	registers repository.RegisterRepository
	branches  repository.BranchRepository
	users     repository.UserRepository
}

// NewRegisterUseCase construye el caso de uso.
func NewRegisterUseCase(
	registers repository.RegisterRepository,
	branches repository.BranchRepository,
	users repository.UserRepository,
) *RegisterUseCase {
	return &RegisterUseCase{registers: registers, branches: branches, users: users}
}

// Create crea una caja en una sucursal existente.
func (uc *RegisterUseCase) Create(ctx context.Context, in dto.CreateRegisterRequest) (*dto.RegisterResponse, error) {
	if strings.TrimSpace(in.Number) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: número y nombre de la caja son requeridos", domain.ErrInvalidInput)
	}
	branch, err := uc.branches.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, fmt.Errorf("%w: la sucursal indicada no existe", domain.ErrInvalidInput)
	}

	now := time.Now()
	register := &entity.CashRegister{
		ID:        uuid.New().String(),
		Number:    strings.TrimSpace(in.Number),
		Name:      strings.TrimSpace(in.Name),
		BranchID:  in.BranchID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.registers.Create(register); err != nil {
		return nil, err
	}
	return toRegisterResponse(register), nil
}

// GetByID obtiene una caja. ErrNotFound si no existe.
func (uc *RegisterUseCase) GetByID(ctx context.Context, id string) (*dto.RegisterResponse, error) {
	register, err := uc.registers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, fmt.Errorf("%w: caja %s", domain.ErrNotFound, id)
	}
	return toRegisterResponse(register), nil
}

// List lista cajas, opcionalmente de una sucursal.
func (uc *RegisterUseCase) List(ctx context.Context, branchID string) ([]dto.RegisterResponse, error) {
	list, err := uc.registers.List(branchID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RegisterResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRegisterResponse(r))
	}
	return items, nil
}

// Update actualiza número, nombre o estado de la caja.
func (uc *RegisterUseCase) Update(ctx context.Context, id string, in dto.UpdateRegisterRequest) (*dto.RegisterResponse, error) {
	register, err := uc.registers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, fmt.Errorf("%w: caja %s", domain.ErrNotFound, id)
	}
	if in.Number != nil {
		register.Number = strings.TrimSpace(*in.Number)
	}
	if in.Name != nil {
		register.Name = strings.TrimSpace(*in.Name)
	}
	if in.Active != nil {
		register.Active = *in.Active
	}
	register.UpdatedAt = time.Now()
	if err := uc.registers.Update(register); err != nil {
		return nil, err
	}
	return toRegisterResponse(register), nil
}

// AssignCashier asigna (o libera, con userID vacío) el cajero de la caja.
// El usuario debe tener rol "Cajero".
func (uc *RegisterUseCase) AssignCashier(ctx context.Context, registerID string, in dto.AssignCashierRequest) (*dto.RegisterResponse, error) {
	register, err := uc.registers.GetByID(registerID)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, fmt.Errorf("%w: caja %s", domain.ErrNotFound, registerID)
	}

	if in.UserID == "" {
		register.UserID = ""
		register.IsAssigned = false
	} else {
		user, err := uc.users.GetByID(in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: el usuario indicado no existe", domain.ErrInvalidInput)
		}
		if user.Role != entity.RoleCajero {
			return nil, fmt.Errorf("%w: el usuario no tiene rol de cajero", domain.ErrInvalidInput)
		}
		register.UserID = in.UserID
		register.IsAssigned = true
	}

	register.UpdatedAt = time.Now()
	if err := uc.registers.Update(register); err != nil {
		return nil, err
	}
	return toRegisterResponse(register), nil
}

// Delete elimina una caja.
func (uc *RegisterUseCase) Delete(ctx context.Context, id string) error {
	register, err := uc.registers.GetByID(id)
	if err != nil {
		return err
	}
	if register == nil {
		return fmt.Errorf("%w: caja %s", domain.ErrNotFound, id)
	}
	return uc.registers.Delete(id)
}

func toRegisterResponse(r *entity.CashRegister) *dto.RegisterResponse {
	return &dto.RegisterResponse{
		ID:         r.ID,
		Number:     r.Number,
		Name:       r.Name,
		Active:     r.Active,
		IsAssigned: r.IsAssigned,
		UserID:     r.UserID,
		BranchID:   r.BranchID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
