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

// BranchUseCase CRUD de sucursales y asignación de jefe de local.
type BranchUseCase struct {
	branches  repository.BranchRepository
	commerces repository.CommerceRepository
	locations repository.LocationRepository
	users     repository.UserRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(
	branches repository.BranchRepository,
	commerces repository.CommerceRepository,
	locations repository.LocationRepository,
	users repository.UserRepository,
) *BranchUseCase {
	return &BranchUseCase{
		branches:  branches,
		commerces: commerces,
		locations: locations,
		users:     users,
	}
}

// Create crea una sucursal de un comercio existente en una comuna existente.
func (uc *BranchUseCase) Create(ctx context.Context, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la sucursal es requerido", domain.ErrInvalidInput)
	}
	commerce, err := uc.commerces.GetByID(in.CommerceID)
	if err != nil {
		return nil, err
	}
	if commerce == nil {
		return nil, fmt.Errorf("%w: el comercio indicado no existe", domain.ErrInvalidInput)
	}
	commune, err := uc.locations.GetCommune(in.CommuneID)
	if err != nil {
		return nil, err
	}
	if commune == nil {
		return nil, fmt.Errorf("%w: la comuna indicada no existe", domain.ErrInvalidInput)
	}

	now := time.Now()
	branch := &entity.Branch{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		IsHeadquarters: in.IsHeadquarters,
		Active:         true,
		CommerceID:     in.CommerceID,
		CommuneID:      in.CommuneID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.branches.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal. ErrNotFound si no existe.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*dto.BranchResponse, error) {
	branch, err := uc.branches.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, fmt.Errorf("%w: sucursal %s", domain.ErrNotFound, id)
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales, casa matriz primero.
func (uc *BranchUseCase) List(ctx context.Context, filter repository.BranchFilter) ([]dto.BranchResponse, error) {
	list, err := uc.branches.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return items, nil
}

// Update actualiza los datos de la sucursal.
func (uc *BranchUseCase) Update(ctx context.Context, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.branches.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, fmt.Errorf("%w: sucursal %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre de la sucursal no puede quedar vacío", domain.ErrInvalidInput)
		}
		branch.Name = name
	}
	if in.Email != nil {
		branch.Email = *in.Email
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.IsHeadquarters != nil {
		branch.IsHeadquarters = *in.IsHeadquarters
	}
	if in.Active != nil {
		branch.Active = *in.Active
	}
	if in.CommuneID != nil {
		commune, err := uc.locations.GetCommune(*in.CommuneID)
		if err != nil {
			return nil, err
		}
		if commune == nil {
			return nil, fmt.Errorf("%w: la comuna indicada no existe", domain.ErrInvalidInput)
		}
		branch.CommuneID = *in.CommuneID
	}
	branch.UpdatedAt = time.Now()
	if err := uc.branches.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// AssignManager asigna (o quita, con userID vacío) el jefe de local.
// El usuario debe tener rol "Jefe de local" y no estar ya asignado a otra
// sucursal; la columna manager_id es UNIQUE como respaldo.
func (uc *BranchUseCase) AssignManager(ctx context.Context, branchID string, in dto.AssignManagerRequest) (*dto.BranchResponse, error) {
	branch, err := uc.branches.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, fmt.Errorf("%w: sucursal %s", domain.ErrNotFound, branchID)
	}

	if in.UserID == "" {
		branch.ManagerID = ""
		branch.IsAssigned = false
	} else {
		user, err := uc.users.GetByID(in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: el usuario indicado no existe", domain.ErrInvalidInput)
		}
		if user.Role != entity.RoleJefeLocal {
			return nil, fmt.Errorf("%w: el usuario no tiene rol de jefe de local", domain.ErrInvalidInput)
		}
		if branch.ManagerID != in.UserID {
			assigned, err := uc.branches.ManagerAssigned(in.UserID)
			if err != nil {
				return nil, err
			}
			if assigned {
				return nil, fmt.Errorf("%w: el jefe ya está asignado a otra sucursal", domain.ErrDuplicate)
			}
		}
		branch.ManagerID = in.UserID
		branch.IsAssigned = true
	}

	branch.UpdatedAt = time.Now()
	if err := uc.branches.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// Delete elimina la sucursal; cajas u otras relaciones vivas → ErrProtected.
func (uc *BranchUseCase) Delete(ctx context.Context, id string) error {
	branch, err := uc.branches.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return fmt.Errorf("%w: sucursal %s", domain.ErrNotFound, id)
	}
	return uc.branches.Delete(id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:             b.ID,
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		Address:        b.Address,
		IsHeadquarters: b.IsHeadquarters,
		IsAssigned:     b.IsAssigned,
		ManagerID:      b.ManagerID,
		Active:         b.Active,
		CommerceID:     b.CommerceID,
		CommuneID:      b.CommuneID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
