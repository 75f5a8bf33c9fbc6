package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// BranchFilter filtros de listado de sucursales.
type BranchFilter struct {
	OnlyActive     bool
	OnlyUnassigned bool // sin jefe de local asignado
}

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	GetByName(name string) (*entity.Branch, error)
	// List ordena casa matriz primero y luego por nombre.
	List(filter BranchFilter) ([]*entity.Branch, error)
	Update(branch *entity.Branch) error
	// ManagerAssigned indica si el usuario ya tiene una sucursal activa asignada.
	ManagerAssigned(userID string) (bool, error)
	// Delete falla con ErrProtected si hay cajas u otras relaciones protegidas.
	Delete(id string) error
}
