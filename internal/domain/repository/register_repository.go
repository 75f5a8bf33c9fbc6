package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// RegisterRepository define el puerto de persistencia para CashRegister (DIP).
type RegisterRepository interface {
	Create(register *entity.CashRegister) error
	GetByID(id string) (*entity.CashRegister, error)
	// List filtra por sucursal si branchID no es vacío; ordena por sucursal y número.
	List(branchID string) ([]*entity.CashRegister, error)
	Update(register *entity.CashRegister) error
	Delete(id string) error
}
