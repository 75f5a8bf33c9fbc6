package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	// List ordena por sucursal, luego principal primero, luego nombre.
	List() ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	// Delete falla con ErrProtected si existen filas de stock de la bodega.
	Delete(id string) error
}
