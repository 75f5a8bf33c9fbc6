package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	// Delete falla con ErrProtected si hay productos que referencian la categoría.
	Delete(id string) error
}
