package repository

import "github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"

// LocationRepository define el puerto para regiones y comunas (referencia geográfica).
type LocationRepository interface {
	CreateRegion(region *entity.Region) error
	CreateCommune(commune *entity.Commune) error
	GetCommune(id string) (*entity.Commune, error)
	ListRegions() ([]*entity.Region, error)
	// ListCommunes filtra por región si regionID no es vacío.
	ListCommunes(regionID string) ([]*entity.Commune, error)
}
