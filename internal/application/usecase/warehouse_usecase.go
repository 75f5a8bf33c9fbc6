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

// WarehouseUseCase CRUD de bodegas.
type WarehouseUseCase struct {
	warehouses repository.WarehouseRepository
	branches   repository.BranchRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouses repository.WarehouseRepository, branches repository.BranchRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouses: warehouses, branches: branches}
}

// Create crea una bodega, opcionalmente asociada a una sucursal existente.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la bodega es requerido", domain.ErrInvalidInput)
	}
	if in.BranchID != "" {
		if err := uc.requireBranch(in.BranchID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      name,
		IsPrimary: in.IsPrimary,
		BranchID:  in.BranchID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouses.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega. ErrNotFound si no existe.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouses.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Update actualiza la bodega. BranchID "" la desasocia de su sucursal.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre de la bodega no puede quedar vacío", domain.ErrInvalidInput)
		}
		warehouse.Name = name
	}
	if in.IsPrimary != nil {
		warehouse.IsPrimary = *in.IsPrimary
	}
	if in.BranchID != nil {
		if *in.BranchID != "" {
			if err := uc.requireBranch(*in.BranchID); err != nil {
				return nil, err
			}
		}
		warehouse.BranchID = *in.BranchID
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouses.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Delete elimina la bodega; filas de stock vivas → ErrProtected.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	warehouse, err := uc.warehouses.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	return uc.warehouses.Delete(id)
}

func (uc *WarehouseUseCase) requireBranch(id string) error {
	branch, err := uc.branches.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return fmt.Errorf("%w: la sucursal indicada no existe", domain.ErrInvalidInput)
	}
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		IsPrimary: w.IsPrimary,
		BranchID:  w.BranchID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
