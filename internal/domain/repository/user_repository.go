package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// List filtra por rol si role no es vacío; onlyActive excluye inactivos.
	List(role string, onlyActive bool) ([]*entity.User, error)
	Update(user *entity.User) error
}
