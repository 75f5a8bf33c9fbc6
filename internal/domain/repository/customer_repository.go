package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// List ordena por apellidos y nombres; search filtra por RUT o apellidos (parcial).
	List(search string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
