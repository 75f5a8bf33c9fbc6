package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// CommerceRepository define el puerto de persistencia para Commerce (DIP).
type CommerceRepository interface {
	Create(commerce *entity.Commerce) error
	GetByID(id string) (*entity.Commerce, error)
	GetByLegalName(legalName string) (*entity.Commerce, error)
	List() ([]*entity.Commerce, error)
	Update(commerce *entity.Commerce) error
	// Delete falla con ErrProtected mientras el comercio tenga sucursales.
	Delete(id string) error
}
